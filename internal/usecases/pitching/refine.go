package pitching

import (
	"bytes"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	llmdomain "github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	fragmentTypeText = "text"

	refineInstruction = "You are helping a social media creator refine a partnership pitch to a brand. " +
		"Apply the creator's requested changes to the latest draft and reply with the full revised pitch, " +
		"keeping the \"Subject:\" line format. Keep what the creator did not ask to change. " +
		"Only use facts from the conversation and the reference context; never invent statistics."
)

// Fragment é um pedaço tipado de conteúdo; apenas type == "text" é considerado
type Fragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RawTurn aceita o conteúdo como string, como lista de fragmentos em content
// ou como lista de fragmentos em parts.
type RawTurn struct {
	Role    string              `json:"role"`
	Content jsoniter.RawMessage `json:"content"`
	Parts   []Fragment          `json:"parts"`
}

type Turn struct {
	Role llmdomain.Role
	Text string
}

type RefineRequest struct {
	Messages []RawTurn              `json:"messages"`
	Creator  *domain.CreatorProfile `json:"creator"`
	Brand    *domain.BrandProfile   `json:"brand"`
}

// NormalizeTurn reduz o turno ao texto canônico: a string de content quando
// presente; senão a concatenação, em ordem e sem separador, dos fragmentos de
// texto; senão "". O papel é apenas normalizado aqui, a validação fica em Refine.
func NormalizeTurn(raw RawTurn) Turn {
	return Turn{
		Role: llmdomain.Role(strings.ToLower(strings.TrimSpace(raw.Role))),
		Text: turnText(raw),
	}
}

func turnText(raw RawTurn) string {
	content := bytes.TrimSpace(raw.Content)

	if len(content) > 0 {
		switch content[0] {
		case '"':
			var text string
			if err := json.Unmarshal(content, &text); err == nil {
				return text
			}
		case '[':
			var fragments []Fragment
			if err := json.Unmarshal(content, &fragments); err == nil {
				return joinTextFragments(fragments)
			}
		}
	}

	return joinTextFragments(raw.Parts)
}

func joinTextFragments(fragments []Fragment) string {
	var b strings.Builder
	for _, fragment := range fragments {
		if fragment.Type == fragmentTypeText {
			b.WriteString(fragment.Text)
		}
	}
	return b.String()
}

// NormalizeTranscript normaliza todos os turnos e rejeita papéis fora de user/assistant
func NormalizeTranscript(raw []RawTurn) ([]Turn, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyTranscript
	}

	turns := make([]Turn, 0, len(raw))
	for i, r := range raw {
		turn := NormalizeTurn(r)
		if turn.Role != llmdomain.RoleUser && turn.Role != llmdomain.RoleAssistant {
			return nil, fmt.Errorf("%w: message %d has role %q", ErrInvalidRole, i, r.Role)
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

// RefineSystemPrompt anexa o bloco de contexto quando criador ou marca foram informados
func RefineSystemPrompt(creator *domain.CreatorProfile, brand *domain.BrandProfile) string {
	return refineInstruction + ContextBlock(creator, brand)
}

// ContextBlock monta "Reference context:" com uma linha por objeto presente;
// subcampos opcionais entram apenas quando preenchidos.
func ContextBlock(creator *domain.CreatorProfile, brand *domain.BrandProfile) string {
	if creator == nil && brand == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nReference context:")

	if creator != nil {
		fmt.Fprintf(&b, "\n- Creator: @%s", strings.TrimPrefix(creator.Username, "@"))
		if creator.Followers > 0 {
			fmt.Fprintf(&b, ", %s followers", utils.FormatCompact(creator.Followers))
		}
		if niche := strings.TrimSpace(creator.Niche); niche != "" {
			fmt.Fprintf(&b, ", niche: %s", niche)
		}
	}

	if brand != nil {
		fmt.Fprintf(&b, "\n- Brand: %s", brand.Name)
		if category := strings.TrimSpace(brand.Category); category != "" {
			fmt.Fprintf(&b, ", category: %s", category)
		}
	}

	return b.String()
}

func toMessages(turns []Turn) []llmdomain.Message {
	messages := make([]llmdomain.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, llmdomain.Message{Role: turn.Role, Content: turn.Text})
	}
	return messages
}
