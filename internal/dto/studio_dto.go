package dto

type GenerateRequest struct {
	ImageBase64    string `json:"image_base64"`
	ImageMimeType  string `json:"image_mime_type"`
	StyleID        string `json:"style_id,omitempty"`
	ReferenceImage string `json:"reference_image,omitempty"`
	AspectRatio    string `json:"aspect_ratio"`
	Count          int    `json:"count"`
}

type GenerateResponse struct {
	Images    []string `json:"images"`
	StyleID   string   `json:"style_id"`
	StyleName string   `json:"style_name"`
	Credits   int      `json:"credits"`
}

type StyleResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ThumbnailURL   string   `json:"thumbnail_url"`
	Category       string   `json:"category"`
	RecommendedFor string   `json:"recommended_for"`
	Tags           []string `json:"tags"`
}

type CreditPackageResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Credits int    `json:"credits"`
	Tag     string `json:"tag,omitempty"`
}

type CatalogResponse struct {
	Styles   []StyleResponse         `json:"styles"`
	Packages []CreditPackageResponse `json:"packages"`
}

// ClientConfigResponse exposes the publishable client-side keys and the
// bank-transfer account for the payment sheet. Secret keys never leave the
// server.
type ClientConfigResponse struct {
	TossClientKey  string `json:"toss_client_key,omitempty"`
	KakaoClientKey string `json:"kakao_client_key,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	BankAccount    string `json:"bank_account,omitempty"`
	BankHolder     string `json:"bank_holder,omitempty"`
}
