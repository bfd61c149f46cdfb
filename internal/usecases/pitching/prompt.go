package pitching

import (
	"fmt"
	"strings"

	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/utils"
)

const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneEnthusiastic = "enthusiastic"
	ToneFriendly     = "friendly"
	ToneConfident    = "confident"

	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

var toneDirectives = map[string]string{
	ToneProfessional: "a professional tone: polished, respectful and concise",
	ToneCasual:       "a casual tone: relaxed and conversational",
	ToneEnthusiastic: "an enthusiastic tone: energetic and genuinely excited about the brand",
	ToneFriendly:     "a friendly tone: warm and approachable",
	ToneConfident:    "a confident tone: direct about the value the creator brings",
}

var lengthDirectives = map[string]string{
	LengthShort:  "under 100 words",
	LengthMedium: "between 150 and 200 words",
	LengthLong:   "between 250 and 300 words",
}

type PitchRequest struct {
	Creator      *domain.CreatorProfile `json:"creator"`
	Brand        *domain.BrandProfile   `json:"brand"`
	Tone         string                 `json:"tone"`
	Length       string                 `json:"length"`
	CustomPoints []string               `json:"customPoints"`
}

type Prompt struct {
	System string
	User   string
}

// BuildPrompt é determinística: as mesmas entradas geram exatamente o mesmo texto.
func BuildPrompt(req PitchRequest) Prompt {
	return Prompt{
		System: systemPrompt(req.Tone, req.Length),
		User:   userPrompt(req),
	}
}

func toneDirective(tone string) string {
	tone = strings.ToLower(strings.TrimSpace(tone))
	if tone == "" {
		tone = ToneProfessional
	}

	if directive, ok := toneDirectives[tone]; ok {
		return directive
	}
	return fmt.Sprintf("a %s tone", tone)
}

func lengthDirective(length string) string {
	if directive, ok := lengthDirectives[strings.ToLower(strings.TrimSpace(length))]; ok {
		return directive
	}
	return lengthDirectives[LengthMedium]
}

func systemPrompt(tone, length string) string {
	var b strings.Builder

	b.WriteString("You are an expert influencer-marketing copywriter. You write outreach pitches that social media creators send to brands to propose a sponsored partnership.\n\n")
	b.WriteString("Guidelines:\n")
	fmt.Fprintf(&b, "- Write in %s.\n", toneDirective(tone))
	fmt.Fprintf(&b, "- Keep the pitch body %s.\n", lengthDirective(length))
	b.WriteString("- Open with a personal hook that shows the creator knows the brand.\n")
	b.WriteString("- Explain why the creator's audience is a good fit for the brand.\n")
	b.WriteString("- Suggest one concrete collaboration idea.\n")
	b.WriteString("- Close with a clear, low-pressure call to action.\n")
	b.WriteString("- Only use facts provided below; never invent statistics.\n")
	b.WriteString("- Start with a line of the form \"Subject: <subject>\", then a blank line, then the pitch body.")

	return b.String()
}

func userPrompt(req PitchRequest) string {
	var b strings.Builder

	b.WriteString("Write a partnership pitch from the creator to the brand described below.")

	if c := req.Creator; c != nil {
		b.WriteString("\n\nCreator:")
		writeField(&b, "Username", "@"+strings.TrimPrefix(c.Username, "@"))
		writeField(&b, "Name", c.FullName)
		if c.Followers > 0 {
			writeField(&b, "Followers", utils.FormatCompact(c.Followers))
		}
		writeField(&b, "Niche", c.Niche)
		if c.EngagementRate > 0 {
			writeField(&b, "Engagement rate", fmt.Sprintf("%.1f%%", c.EngagementRate))
		}
		if c.IsVerified {
			writeField(&b, "Verified", "yes")
		}
		writeField(&b, "Bio", c.Bio)
		if len(c.RecentHashtags) > 0 {
			tags := make([]string, 0, len(c.RecentHashtags))
			for _, tag := range c.RecentHashtags {
				if tag = strings.TrimPrefix(strings.TrimSpace(tag), "#"); tag != "" {
					tags = append(tags, "#"+tag)
				}
			}
			writeField(&b, "Recent hashtags", strings.Join(tags, ", "))
		}
	}

	if br := req.Brand; br != nil {
		b.WriteString("\n\nBrand:")
		writeField(&b, "Name", br.Name)
		if handle := strings.TrimPrefix(br.Handle, "@"); handle != "" {
			writeField(&b, "Handle", "@"+handle)
		}
		writeField(&b, "Category", br.Category)
		if br.Followers > 0 {
			writeField(&b, "Followers", utils.FormatCompact(br.Followers))
		}
		if br.PartnershipCount > 0 {
			writeField(&b, "Past creator partnerships", fmt.Sprintf("%d", br.PartnershipCount))
		}
	}

	points := talkingPoints(req.CustomPoints)
	if len(points) > 0 {
		b.WriteString("\n\nTalking points to include:")
		for _, point := range points {
			b.WriteString("\n- ")
			b.WriteString(point)
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" || value == "@" {
		return
	}
	fmt.Fprintf(b, "\n- %s: %s", label, value)
}

func talkingPoints(points []string) []string {
	result := make([]string, 0, len(points))
	for _, point := range points {
		if point = strings.TrimSpace(point); point != "" {
			result = append(result, point)
		}
	}
	return result
}
