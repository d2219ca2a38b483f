package photoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/pkg/metrics"
)

// maxErrorBody bounds how much of a failed response is kept in a BackendError
const maxErrorBody = 512

// PhotoClient talks to the photo indexing backend over HTTP+JSON
type PhotoClient struct {
	baseURL       string
	httpClient    *http.Client
	datasetClient *http.Client
}

type renameRequest struct {
	Name string `json:"name"`
}

type mergeRequest struct {
	SourceID int64 `json:"source_id"`
	TargetID int64 `json:"target_id"`
}

type datasetRequest struct {
	FolderPath string `json:"folder_path"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewPhotoClient creates a client. datasetTimeout applies only to ingestion, which can run for minutes.
func NewPhotoClient(baseURL string, timeout, datasetTimeout time.Duration) *PhotoClient {
	return &PhotoClient{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		datasetClient: &http.Client{Timeout: datasetTimeout},
	}
}

func (c *PhotoClient) BaseURL() string {
	return c.baseURL
}

// Search implements repositories.PhotoRepository
func (c *PhotoClient) Search(ctx context.Context, query models.SearchQuery) (*models.ResultPage, error) {
	var page models.ResultPage
	if err := c.do(ctx, c.httpClient, "search", http.MethodPost, "/search", query, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []models.PhotoMatch{}
	}
	return &page, nil
}

// LoadDataset implements repositories.PhotoRepository
func (c *PhotoClient) LoadDataset(ctx context.Context, folderPath string) (*models.DatasetResult, error) {
	var result models.DatasetResult
	if err := c.do(ctx, c.datasetClient, "load_dataset", http.MethodPost, "/dataset/load", datasetRequest{FolderPath: folderPath}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List implements repositories.PersonRepository
func (c *PhotoClient) List(ctx context.Context) ([]models.Person, error) {
	var people []models.Person
	if err := c.do(ctx, c.httpClient, "list_people", http.MethodGet, "/people", nil, &people); err != nil {
		return nil, err
	}
	if people == nil {
		people = []models.Person{}
	}
	return people, nil
}

func (c *PhotoClient) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	var person models.Person
	if err := c.do(ctx, c.httpClient, "get_person", http.MethodGet, fmt.Sprintf("/people/%d", id), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *PhotoClient) Rename(ctx context.Context, id int64, name string) (*models.Person, error) {
	var person models.Person
	if err := c.do(ctx, c.httpClient, "update_person", http.MethodPatch, fmt.Sprintf("/people/%d", id), renameRequest{Name: name}, &person); err != nil {
		return nil, err
	}
	if err := requirePerson("update_person", http.StatusOK, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *PhotoClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, c.httpClient, "delete_person", http.MethodDelete, fmt.Sprintf("/people/%d", id), nil, nil)
}

func (c *PhotoClient) Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error) {
	var person models.Person
	if err := c.do(ctx, c.httpClient, "merge_people", http.MethodPost, "/people/merge", mergeRequest{SourceID: sourceID, TargetID: targetID}, &person); err != nil {
		return nil, err
	}
	if err := requirePerson("merge_people", http.StatusOK, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// IsAvailable reports whether the backend answers HTTP at all
func (c *PhotoClient) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/people", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func (c *PhotoClient) do(ctx context.Context, client *http.Client, operation, method, path string, in, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveBackendCall(operation, resultLabel(err), time.Since(start))
	}()

	var body io.Reader
	if in != nil {
		jsonBody, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", operation, err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", operation, repositories.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w: %w", operation, repositories.ErrNetworkFailure, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", operation, repositories.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &repositories.BackendError{
			Operation: operation,
			Status:    resp.StatusCode,
			Message:   errorMessage(respBody),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &repositories.BackendError{
			Operation: operation,
			Status:    resp.StatusCode,
			Message:   "malformed response: " + err.Error(),
		}
	}
	return nil
}

// requirePerson rejects a 2xx reply that carried no person record
func requirePerson(operation string, status int, person *models.Person) error {
	if person.ID == 0 {
		return &repositories.BackendError{
			Operation: operation,
			Status:    status,
			Message:   "response did not include a person",
		}
	}
	return nil
}

func errorMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return msg
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case repositories.IsBackendError(err):
		return "backend_error"
	case errors.Is(err, repositories.ErrNotFound):
		return "not_found"
	default:
		return "network_error"
	}
}
