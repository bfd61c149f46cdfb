package domain

type ContactSignal string

const (
	ContactSignalActive   ContactSignal = "active"
	ContactSignalModerate ContactSignal = "moderate"
	ContactSignalLow      ContactSignal = "low"
)

// ActivityWindowMonths é o tamanho da janela de meses analisada
const ActivityWindowMonths = 6

type MonthlyActivityBucket struct {
	MonthKey string `json:"monthKey"` // Formato yyyy-mm (ex: 2024-01)
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

type ActivitySignal struct {
	TotalCount          int
	RecentCount         int
	Signal              ContactSignal
	IsGoodTimeToContact bool
	LastActiveMonth     *string
}

type BrandActivity struct {
	BrandID              string                  `json:"brandId"`
	MonthlyActivity      []MonthlyActivityBucket `json:"monthlyActivity"`
	CurrentMonthProgress int                     `json:"currentMonthProgress"`
	IsGoodTimeToContact  bool                    `json:"isGoodTimeToContact"`
	ContactSignal        ContactSignal           `json:"contactSignal"`
	LastActiveMonth      *string                 `json:"lastActiveMonth"`
	TotalPartnerships    int                     `json:"totalPartnerships"`
	RecentPartnerships   int                     `json:"recentPartnerships"`
}
