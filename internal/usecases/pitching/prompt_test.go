package pitching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

func sampleRequest() PitchRequest {
	return PitchRequest{
		Creator: &domain.CreatorProfile{
			Username:       "janedoe",
			FullName:       "Jane Doe",
			Followers:      12500,
			Niche:          "beauty",
			EngagementRate: 4.31,
			IsVerified:     true,
			Bio:            "Skincare nerd",
			RecentHashtags: []string{"#skincare", "spf", " "},
		},
		Brand: &domain.BrandProfile{
			Name:             "Glow Co",
			Handle:           "@glowco",
			Category:         "beauty",
			Followers:        1_200_000,
			PartnershipCount: 14,
		},
		Tone:         "casual",
		Length:       "short",
		CustomPoints: []string{" Mention my SPF series ", "", "   "},
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	first := BuildPrompt(sampleRequest())
	second := BuildPrompt(sampleRequest())

	assert.Equal(t, first.System, second.System)
	assert.Equal(t, first.User, second.User)
}

func TestBuildPrompt_UserPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleRequest())

	expected := "Write a partnership pitch from the creator to the brand described below." +
		"\n\nCreator:" +
		"\n- Username: @janedoe" +
		"\n- Name: Jane Doe" +
		"\n- Followers: 12.5K" +
		"\n- Niche: beauty" +
		"\n- Engagement rate: 4.3%" +
		"\n- Verified: yes" +
		"\n- Bio: Skincare nerd" +
		"\n- Recent hashtags: #skincare, #spf" +
		"\n\nBrand:" +
		"\n- Name: Glow Co" +
		"\n- Handle: @glowco" +
		"\n- Category: beauty" +
		"\n- Followers: 1.2M" +
		"\n- Past creator partnerships: 14" +
		"\n\nTalking points to include:" +
		"\n- Mention my SPF series"

	assert.Equal(t, expected, prompt.User)
}

func TestBuildPrompt_OmitsMissingFields(t *testing.T) {
	prompt := BuildPrompt(PitchRequest{
		Creator: &domain.CreatorProfile{Username: "sam"},
		Brand:   &domain.BrandProfile{Name: "Acme"},
	})

	assert.Equal(t, "Write a partnership pitch from the creator to the brand described below."+
		"\n\nCreator:\n- Username: @sam"+
		"\n\nBrand:\n- Name: Acme", prompt.User)
	assert.NotContains(t, prompt.User, "Talking points")
}

func TestBuildPrompt_Tone(t *testing.T) {
	tests := []struct {
		tone string
		want string
	}{
		{"", "a professional tone"},
		{"professional", "a professional tone"},
		{"casual", "a casual tone"},
		{"Enthusiastic", "an enthusiastic tone"},
		{"friendly", "a friendly tone"},
		{"confident", "a confident tone"},
		{"playful", "- Write in a playful tone.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.tone, func(t *testing.T) {
			prompt := BuildPrompt(PitchRequest{Tone: tt.tone})
			assert.Contains(t, prompt.System, tt.want)
		})
	}
}

func TestBuildPrompt_Length(t *testing.T) {
	tests := []struct {
		length string
		want   string
	}{
		{"short", "under 100 words"},
		{"medium", "between 150 and 200 words"},
		{"long", "between 250 and 300 words"},
		{"", "between 150 and 200 words"},
		{"epic", "between 150 and 200 words"},
	}

	for _, tt := range tests {
		t.Run(tt.length, func(t *testing.T) {
			prompt := BuildPrompt(PitchRequest{Length: tt.length})
			assert.Contains(t, prompt.System, "Keep the pitch body "+tt.want+".")
		})
	}
}

func TestBuildPrompt_SystemHasSubjectFormat(t *testing.T) {
	prompt := BuildPrompt(sampleRequest())
	assert.True(t, strings.HasSuffix(prompt.System, "then the pitch body."))
	assert.Contains(t, prompt.System, `"Subject: <subject>"`)
}
