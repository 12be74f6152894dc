package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shenikar/tactical_dashboard/internal/models"
)

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

// DataSource - чтения и запись, которые дашборд делает через HTTP API
type DataSource interface {
	Officer(ctx context.Context, badge string) (*models.Officer, error)
	Routes(ctx context.Context) ([]models.Route, error)
	ActiveAlerts(ctx context.Context) ([]models.Alert, error)
	EmergencyServices(ctx context.Context) ([]models.EmergencyService, error)
	TriggerEmergency(ctx context.Context, req models.EmergencyRequest) (*models.Alert, error)
}

// Fetcher - DataSource поверх /api
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
}

func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Message string `json:"message"`
}

type emergencyResponse struct {
	Message string        `json:"message"`
	Alert   *models.Alert `json:"alert"`
}

// Officer возвращает nil без ошибки, если жетон неизвестен
func (f *Fetcher) Officer(ctx context.Context, badge string) (*models.Officer, error) {
	var officer models.Officer
	found, err := f.do(ctx, http.MethodGet, "/api/officer/"+url.PathEscape(badge), nil, &officer)
	if err != nil {
		return nil, errors.Wrap(err, "fetch officer")
	}
	if !found {
		return nil, nil
	}
	return &officer, nil
}

func (f *Fetcher) Routes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if _, err := f.do(ctx, http.MethodGet, "/api/routes", nil, &routes); err != nil {
		return nil, errors.Wrap(err, "fetch routes")
	}
	return routes, nil
}

func (f *Fetcher) ActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if _, err := f.do(ctx, http.MethodGet, "/api/alerts", nil, &alerts); err != nil {
		return nil, errors.Wrap(err, "fetch alerts")
	}
	return alerts, nil
}

func (f *Fetcher) EmergencyServices(ctx context.Context) ([]models.EmergencyService, error) {
	var services []models.EmergencyService
	if _, err := f.do(ctx, http.MethodGet, "/api/emergency-services", nil, &services); err != nil {
		return nil, errors.Wrap(err, "fetch emergency services")
	}
	return services, nil
}

func (f *Fetcher) TriggerEmergency(ctx context.Context, req models.EmergencyRequest) (*models.Alert, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode emergency request")
	}

	var resp emergencyResponse
	if _, err := f.do(ctx, http.MethodPost, "/api/emergency-alert", body, &resp); err != nil {
		return nil, errors.Wrap(err, "trigger emergency alert")
	}
	if resp.Alert == nil {
		return nil, errors.New("trigger emergency alert: response has no alert")
	}
	return resp.Alert, nil
}

// do выполняет запрос и декодирует 2xx-ответ в out. 404 возвращает found=false без ошибки.
func (f *Fetcher) do(ctx context.Context, method, path string, body []byte, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return false, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return false, errors.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, errors.Wrap(err, "decode response")
	}
	return true, nil
}
