package dto

type CreateReviewRequest struct {
	Nickname    string `json:"nickname"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
	BeforeImage string `json:"before_image"`
	AfterImage  string `json:"after_image"`
	Password    string `json:"password,omitempty"`
}

type DeleteReviewRequest struct {
	Password string `json:"password,omitempty"`
}

// ReviewResponse carries both persisted reviews (string UUID id) and the
// built-in seed set (small integer id). Clients key deletability off the id
// type, mirroring the store's rule that integer ids are immutable.
type ReviewResponse struct {
	ID          interface{} `json:"id"`
	User        string      `json:"user"`
	Rating      int         `json:"rating"`
	Text        string      `json:"text"`
	BeforeImage string      `json:"before_image"`
	AfterImage  string      `json:"after_image"`
	Date        string      `json:"date"`
	UserID      string      `json:"user_id,omitempty"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
