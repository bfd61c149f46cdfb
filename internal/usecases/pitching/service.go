package pitching

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	llmdomain "github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
)

// DefaultMaxOutputTokens é o teto de tokens por resposta do backend
const DefaultMaxOutputTokens = 500

type Service interface {
	Generate(ctx context.Context, req PitchRequest) (llmdomain.Stream, error)
	Refine(ctx context.Context, req RefineRequest) (llmdomain.Stream, error)
}

type service struct {
	generator       llmdomain.Generator
	profiles        profile.ProfileFetcher
	maxOutputTokens int
}

func NewService(generator llmdomain.Generator, profiles profile.ProfileFetcher, maxOutputTokens int) Service {
	if maxOutputTokens <= 0 {
		maxOutputTokens = DefaultMaxOutputTokens
	}

	return &service{
		generator:       generator,
		profiles:        profiles,
		maxOutputTokens: maxOutputTokens,
	}
}

// Generate valida a entrada antes de qualquer chamada ao backend e devolve o
// stream da resposta. Cancelar ctx aborta a chamada em andamento.
func (s *service) Generate(ctx context.Context, req PitchRequest) (llmdomain.Stream, error) {
	if req.Creator == nil {
		return nil, NewPitchError(ErrCreatorRequired, apiErrors.ErrInvalidRequest, "")
	}

	if req.Brand == nil {
		return nil, NewPitchError(ErrBrandRequired, apiErrors.ErrInvalidRequest, "")
	}

	if req.Creator.IsStub() {
		creator, err := s.resolveCreator(ctx, req.Creator.Username)
		if err != nil {
			return nil, err
		}
		req.Creator = creator
	}

	prompt := BuildPrompt(req)

	return s.stream(ctx, llmdomain.ChatRequest{
		System:          prompt.System,
		Messages:        []llmdomain.Message{{Role: llmdomain.RoleUser, Content: prompt.User}},
		MaxOutputTokens: s.maxOutputTokens,
	})
}

func (s *service) Refine(ctx context.Context, req RefineRequest) (llmdomain.Stream, error) {
	turns, err := NormalizeTranscript(req.Messages)
	if err != nil {
		return nil, NewPitchError(err, apiErrors.ErrInvalidRequest, "")
	}

	return s.stream(ctx, llmdomain.ChatRequest{
		System:          RefineSystemPrompt(req.Creator, req.Brand),
		Messages:        toMessages(turns),
		MaxOutputTokens: s.maxOutputTokens,
	})
}

func (s *service) resolveCreator(ctx context.Context, username string) (*domain.CreatorProfile, error) {
	if s.profiles == nil {
		return nil, NewPitchError(ErrCreatorNotFound, apiErrors.ErrResourceNotFound, username)
	}

	creator, err := s.profiles.FetchProfile(ctx, username)
	if err != nil {
		return nil, NewPitchError(ErrProfileFailure, apiErrors.ErrExternalService, "")
	}

	if creator == nil {
		return nil, NewPitchError(ErrCreatorNotFound, apiErrors.ErrResourceNotFound, username)
	}

	return creator, nil
}

func (s *service) stream(ctx context.Context, req llmdomain.ChatRequest) (llmdomain.Stream, error) {
	stream, err := s.generator.StreamChat(ctx, req)
	if err != nil {
		fields := logrus.Fields{"turns": len(req.Messages)}

		var upstreamErr *llmdomain.UpstreamError
		if errors.As(err, &upstreamErr) {
			fields["status"] = upstreamErr.StatusCode
			fields["body"] = upstreamErr.Body
		}

		logrus.WithError(err).WithFields(fields).Error("Falha no backend de geração de texto")
		return nil, NewPitchError(ErrUpstreamFailure, apiErrors.ErrExternalService, "")
	}

	return stream, nil
}
