package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"api-technician/model"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// DefaultDataURL คือชุดข้อมูลจังหวัด/อำเภอของประเทศไทย
const DefaultDataURL = "https://raw.githubusercontent.com/kongvut/thai-province-data/master/api_province_with_amphure_tambon.json"

// Client ดึงข้อมูลจังหวัดทั้งหมดจาก API สาธารณะ ไม่มี cache และไม่มี retry
type Client struct {
	httpClient *http.Client
	url        string
	logger     *zap.Logger
}

func NewClient(url string, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultDataURL
	}
	return &Client{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		url:        url,
		logger:     logger,
	}
}

// FetchAll ดึงจังหวัดทั้งหมดพร้อมรายชื่ออำเภอด้วย GET ครั้งเดียว
func (c *Client) FetchAll(ctx context.Context) ([]model.Province, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build geo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Error fetching location data", zap.Error(err))
		return nil, fmt.Errorf("fetch location data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Location data request failed", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetch location data: unexpected status %d", resp.StatusCode)
	}

	var provinces []model.Province
	if err := json.NewDecoder(resp.Body).Decode(&provinces); err != nil {
		c.logger.Error("Error decoding location data", zap.Error(err))
		return nil, fmt.Errorf("decode location data: %w", err)
	}
	return provinces, nil
}

// AmphuresFor หาอำเภอของจังหวัดตามชื่อภาษาไทย (ต้องตรงทุกตัวอักษร)
func AmphuresFor(provinces []model.Province, provinceName string) []model.Amphure {
	for _, p := range provinces {
		if p.NameTH == provinceName {
			if p.Amphures == nil {
				return []model.Amphure{}
			}
			return p.Amphures
		}
	}
	return []model.Amphure{}
}

// TambonsFor ยังคืนค่าว่างเสมอ เพราะแหล่งข้อมูลไม่ได้ใช้ระดับตำบล
func TambonsFor(amphures []model.Amphure, amphureName string) []model.Tambon {
	return []model.Tambon{}
}
