package chi

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/ghsearch"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
	searchuc "github.com/kailas-cloud/ghsearch/internal/usecase/search"
)

// Error codes returned in errorResponse.Code.
const (
	codeBadRequest           = "bad_request"
	codeUnauthorized         = "unauthorized"
	codeNotFound             = "not_found"
	codeMethodNotAllowed     = "method_not_allowed"
	codeValidationFailed     = "validation_failed"
	codeUnknownResource      = "unknown_resource"
	codeInvalidOperator      = "invalid_operator"
	codeRepositoryIDRequired = "repository_id_required"
	codeBatchTooLarge        = "batch_too_large"
	codeUpstreamUnavailable  = "upstream_unavailable"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// filterDTO is the structured form of a filter.
type filterDTO struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	Negative bool   `json:"negative,omitempty"`
	Operator string `json:"operator,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

// searchRequestDTO is the body of POST /v1/search/{resource}.
// Filters use search box notation ("stars:>=100"); Qualifiers the structured form.
type searchRequestDTO struct {
	Keywords     []string    `json:"keywords,omitempty"`
	Filters      []string    `json:"filters,omitempty"`
	Qualifiers   []filterDTO `json:"qualifiers,omitempty"`
	Sort         string      `json:"sort,omitempty"`
	Order        string      `json:"order,omitempty"`
	RepositoryID *int64      `json:"repository_id,omitempty"`
	TextMatches  bool        `json:"text_matches,omitempty"`
}

type batchItemDTO struct {
	Resource string `json:"resource"`
	searchRequestDTO
}

type batchRequestDTO struct {
	Items []batchItemDTO `json:"items"`
}

type batchResultDTO struct {
	Status int             `json:"status,omitempty"`
	Body   json.RawMessage `json:"body,omitempty"`
	Error  *errorResponse  `json:"error,omitempty"`
}

type batchResponseDTO struct {
	Items []batchResultDTO `json:"items"`
}

type urlResponseDTO struct {
	URL string `json:"url"`
}

type healthResponseDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (d *searchRequestDTO) toRequest(kind resource.Kind) (searchuc.Request, error) {
	filters := make([]ghsearch.Filter, 0, len(d.Filters)+len(d.Qualifiers))
	for _, s := range d.Filters {
		f, err := ghsearch.ParseFilter(s)
		if err != nil {
			return searchuc.Request{}, fmt.Errorf("filter %q: %w", s, err)
		}
		filters = append(filters, f)
	}
	for _, q := range d.Qualifiers {
		filters = append(filters, ghsearch.Filter{
			Name:     q.Name,
			Value:    q.Value,
			Negative: q.Negative,
			Operator: ghsearch.Operator(q.Operator),
			From:     q.From,
			To:       q.To,
		})
	}

	return searchuc.Request{
		Kind:         kind,
		Keywords:     d.Keywords,
		Filters:      filters,
		Sort:         d.Sort,
		Order:        d.Order,
		RepositoryID: d.RepositoryID,
		TextMatches:  d.TextMatches,
	}, nil
}

// rawBody embeds a JSON upstream body as-is and quotes anything else.
func rawBody(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return body
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return quoted
}
