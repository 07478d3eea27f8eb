// Package openfoodfacts looks up packaged foods in the Open Food Facts
// database and reports their nutrition per 100g or 100ml.
package openfoodfacts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

const userAgent = "caltrack/1.0 (calorie tracker CLI)"

// Product holds the per-100 base nutrition of one product. Macro pointers are
// nil when the database has no value.
type Product struct {
	Code     string
	Name     string
	Brand    string
	BaseUnit model.BaseUnit
	Calories float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Product{}, fmt.Errorf("barcode is required")
	}
	body, err := c.get(ctx, fmt.Sprintf("/api/v2/product/%s.json", url.PathEscape(barcode)))
	if err != nil {
		return Product{}, err
	}
	doc := gjson.ParseBytes(body)
	if doc.Get("status").Int() != 1 {
		return Product{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}
	p, ok := parseProduct(doc.Get("product"))
	if !ok {
		return Product{}, fmt.Errorf("openfoodfacts product %q has no name or calories per 100", barcode)
	}
	if p.Code == "" {
		p.Code = barcode
	}
	return p, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 {
		limit = 10
	}
	path := fmt.Sprintf("/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d", url.QueryEscape(query), limit)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, limit)
	gjson.GetBytes(body, "products").ForEach(func(_, item gjson.Result) bool {
		if p, ok := parseProduct(item); ok {
			out = append(out, p)
		}
		return len(out) < limit
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("no openfoodfacts product found for query %q", query)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode openfoodfacts response: invalid json")
	}
	return body, nil
}

// parseProduct reads the _100g nutriments only; per-serving values do not
// fit an ingredient definition.
func parseProduct(p gjson.Result) (Product, bool) {
	name := strings.TrimSpace(p.Get("product_name").String())
	kcal := p.Get("nutriments.energy-kcal_100g")
	if name == "" || !kcal.Exists() {
		return Product{}, false
	}
	base := model.BaseUnit100g
	if strings.EqualFold(strings.TrimSpace(p.Get("nutrition_data_per").String()), "100ml") ||
		strings.EqualFold(strings.TrimSpace(p.Get("serving_quantity_unit").String()), "ml") {
		base = model.BaseUnit100ml
	}
	code := p.Get("code").String()
	if code == "" {
		code = p.Get("_id").String()
	}
	return Product{
		Code:     code,
		Name:     name,
		Brand:    strings.TrimSpace(p.Get("brands").String()),
		BaseUnit: base,
		Calories: kcal.Float(),
		Protein:  optionalFloat(p.Get("nutriments.proteins_100g")),
		Carbs:    optionalFloat(p.Get("nutriments.carbohydrates_100g")),
		Fat:      optionalFloat(p.Get("nutriments.fat_100g")),
	}, true
}

func optionalFloat(r gjson.Result) *float64 {
	if !r.Exists() {
		return nil
	}
	v := r.Float()
	return &v
}
