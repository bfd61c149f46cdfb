package domain

// CreatorProfile é o perfil normalizado devolvido pelo provedor de dados sociais
type CreatorProfile struct {
	Username       string   `json:"username"`
	FullName       string   `json:"fullName"`
	Bio            string   `json:"bio"`
	Followers      int      `json:"followers"`
	Following      int      `json:"following"`
	PostsCount     int      `json:"postsCount"`
	ProfilePicture string   `json:"profilePicture"`
	IsVerified     bool     `json:"isVerified"`
	EngagementRate float64  `json:"engagementRate"`
	Niche          string   `json:"niche"`
	RecentHashtags []string `json:"recentHashtags"`
}

// IsStub indica que apenas o username foi informado
func (c *CreatorProfile) IsStub() bool {
	return c != nil && c.Username != "" && c.FullName == "" && c.Followers == 0 && c.Niche == "" && c.Bio == ""
}

// BrandProfile é o recorte da marca usado na geração de pitches
type BrandProfile struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Handle           string `json:"handle"`
	Category         string `json:"category"`
	Followers        int    `json:"followers"`
	PartnershipCount int    `json:"partnershipCount"`
}
