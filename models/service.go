package models

// ServiceCategory 는 추천 태깅에 사용하는 서비스 카테고리 식별자다.
// 여섯 개의 고정된 값만 존재하며 동적으로 생성하지 않는다.
type ServiceCategory string

const (
	CategoryScripting    ServiceCategory = "basic-scripting"
	CategoryEmailHygiene ServiceCategory = "email-file-hygiene"
	CategoryReporting    ServiceCategory = "reporting"
	CategoryWebsites     ServiceCategory = "websites"
	CategoryPCSetup      ServiceCategory = "pc-setup"
	CategoryTemplates    ServiceCategory = "templates"
)

// AllCategories 는 카탈로그 순서대로 나열한 전체 카테고리 목록이다.
var AllCategories = []ServiceCategory{
	CategoryScripting,
	CategoryEmailHygiene,
	CategoryReporting,
	CategoryWebsites,
	CategoryPCSetup,
	CategoryTemplates,
}

// ServiceInfo 는 카탈로그가 카테고리별로 보관하는 읽기 전용 서비스 정보다.
type ServiceInfo struct {
	Category       ServiceCategory `json:"category"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon"`
	PriceRange     string          `json:"price_range"`
	Turnaround     string          `json:"turnaround"`
	TypicalSavings string          `json:"typical_savings"`
}
