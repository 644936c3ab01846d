package http

import (
	"time"

	"ceaseletter/internal/core/application/usecases/queries"
	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"
)

// errorResponse is the uniform error payload of the API.
type errorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type generateLetterResponse struct {
	LetterText string `json:"letterText"`
}

type verifyAddressRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

type verifyAddressResponse struct {
	Deliverable    bool           `json:"deliverable"`
	Deliverability string         `json:"deliverability"`
	Normalized     map[string]any `json:"normalized,omitempty"`
}

type sendOrderRequest struct {
	OrderID string `json:"orderId"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type updateOrderRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// orderResponse is the full single-order view, audit trail included.
type orderResponse struct {
	ID             string        `json:"id"`
	Status         order.Status  `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Form           letter.Form   `json:"form"`
	LetterText     string        `json:"letterText"`
	TrackingNumber string        `json:"trackingNumber,omitempty"`
	LobLetterID    string        `json:"lobLetterId,omitempty"`
	LobMailingID   string        `json:"lobMailingId,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	LastError      string        `json:"lastError,omitempty"`
	Events         []order.Event `json:"events"`
}

func newOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:             o.ID().String(),
		Status:         o.Status(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		Form:           o.Form(),
		LetterText:     o.LetterText(),
		TrackingNumber: o.TrackingNumber(),
		LobLetterID:    o.LobLetterID(),
		LobMailingID:   o.LobMailingID(),
		Notes:          o.Notes(),
		LastError:      o.LastError(),
		Events:         o.Events(),
	}
}

type orderSummaryResponse struct {
	ID             string       `json:"id"`
	Status         order.Status `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	CustomerEmail  string       `json:"customerEmail"`
	CollectorName  string       `json:"collectorName"`
	TrackingNumber string       `json:"trackingNumber,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	LastError      string       `json:"lastError,omitempty"`
}

type listOrdersResponse struct {
	Items   []orderSummaryResponse `json:"items"`
	Total   int                    `json:"total"`
	HasMore bool                   `json:"hasMore"`
}

func newListOrdersResponse(result queries.ListOrdersQueryResponse) listOrdersResponse {
	items := make([]orderSummaryResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = orderSummaryResponse{
			ID:             item.ID.String(),
			Status:         item.Status,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
			CustomerEmail:  item.CustomerEmail,
			CollectorName:  item.CollectorName,
			TrackingNumber: item.TrackingNumber,
			Notes:          item.Notes,
			LastError:      item.LastError,
		}
	}
	return listOrdersResponse{
		Items:   items,
		Total:   result.Total,
		HasMore: result.HasMore,
	}
}

type metricsResponse struct {
	Total     int            `json:"total"`
	Today     int            `json:"today"`
	Last7Days int            `json:"last7Days"`
	ByStatus  map[string]int `json:"byStatus"`
}

type createBlogPostRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Summary   string   `json:"summary"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	HeroImage string   `json:"heroImage"`
	Publish   bool     `json:"publish"`
}

type updateBlogPostRequest struct {
	Title     *string  `json:"title"`
	Slug      *string  `json:"slug"`
	Summary   *string  `json:"summary"`
	Content   *string  `json:"content"`
	Tags      []string `json:"tags"`
	HeroImage *string  `json:"heroImage"`
	Status    *string  `json:"status"`
}

type publishBlogPostRequest struct {
	Publish bool `json:"publish"`
}

// blogPostResponse is the full single-post view, content included.
type blogPostResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Summary     string          `json:"summary,omitempty"`
	Content     string          `json:"content"`
	Tags        []string        `json:"tags"`
	HeroImage   string          `json:"heroImage,omitempty"`
	Status      blogpost.Status `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"`
}

func newBlogPostResponse(p *blogpost.Post) blogPostResponse {
	return blogPostResponse{
		ID:          p.ID().String(),
		Title:       p.Title(),
		Slug:        p.Slug(),
		Summary:     p.Summary(),
		Content:     p.Content(),
		Tags:        p.Tags(),
		HeroImage:   p.HeroImage(),
		Status:      p.Status(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		PublishedAt: p.PublishedAt(),
	}
}

type blogPostSummaryResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Summary     string          `json:"summary,omitempty"`
	HeroImage   string          `json:"heroImage,omitempty"`
	Status      blogpost.Status `json:"status"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"`
}

type listBlogPostsResponse struct {
	Items   []blogPostSummaryResponse `json:"items"`
	Total   int                       `json:"total"`
	HasMore bool                      `json:"hasMore"`
}

func newListBlogPostsResponse(result queries.ListBlogPostsQueryResponse) listBlogPostsResponse {
	items := make([]blogPostSummaryResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = blogPostSummaryResponse{
			ID:          item.ID.String(),
			Title:       item.Title,
			Slug:        item.Slug,
			Summary:     item.Summary,
			HeroImage:   item.HeroImage,
			Status:      item.Status,
			Tags:        item.Tags,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
			PublishedAt: item.PublishedAt,
		}
	}
	return listBlogPostsResponse{
		Items:   items,
		Total:   result.Total,
		HasMore: result.HasMore,
	}
}
