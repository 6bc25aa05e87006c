package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/medsupply/ordering-backend/internal/config"
	"github.com/medsupply/ordering-backend/internal/handlers"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/store"
)

func setupApp(t *testing.T) (*fiber.App, *store.Stores) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
		StorageBackend:   config.StorageBackendMemory,
		AuthMode:         config.AuthModeMock,
	}
	stores := store.NewMemory()

	authService := services.NewAuthService(stores.Users, stores.RefreshTokens, cfg)
	userService := services.NewUserService(stores.Users, stores.Clinics)
	clinicService := services.NewClinicService(stores.Clinics)
	productService := services.NewProductService(stores.Products)
	orderService := services.NewOrderService(stores.Orders, stores.Products, stores.Clinics)
	templateService := services.NewTemplateService(stores.Templates, stores.Products, stores.Orders, stores.Clinics)
	settingsService := services.NewSettingsService(stores.Settings, stores.Clinics)
	inventoryService := services.NewInventoryService(stores.Products, stores.Stock)

	h := &Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		User:      handlers.NewUserHandler(userService),
		Clinic:    handlers.NewClinicHandler(clinicService),
		Product:   handlers.NewProductHandler(productService),
		Order:     handlers.NewOrderHandler(orderService),
		Template:  handlers.NewTemplateHandler(templateService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Health:    handlers.NewHealthHandler(cfg),
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	Setup(app, cfg, stores, h)
	return app, stores
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestHealth(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if body["status"] != "ok" || body["storage"] != "memory" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthRegisterLoginFlow(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "nurse@clinic.test",
		"password": "s3cret-pass",
		"name":     "Nurse",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d: %v", resp.StatusCode, body)
	}
	if body["access_token"] == "" || body["refresh_token"] == "" {
		t.Fatalf("tokens missing: %v", body)
	}

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nurse@clinic.test",
		"password": "wrong-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status %d", resp.StatusCode)
	}
	envelope, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error envelope: %v", body)
	}
	if envelope["code"] != "UNAUTHORIZED" || envelope["statusCode"] != float64(401) {
		t.Fatalf("wrong envelope: %v", envelope)
	}
}

func TestValidationErrorsUseEnvelope(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "not-an-email",
		"password": "short",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", resp.StatusCode)
	}
	envelope := body["error"].(map[string]any)
	if envelope["code"] != "BAD_REQUEST" {
		t.Fatalf("wrong code: %v", envelope)
	}
}

func TestClinicAndProductCRUDOverHTTP(t *testing.T) {
	app, _ := setupApp(t)

	resp, clinic := doJSON(t, app, http.MethodPost, "/api/clinics/", map[string]any{
		"name":    "Downtown Clinic",
		"address": "12 Main St",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create clinic status %d: %v", resp.StatusCode, clinic)
	}
	clinicID := clinic["id"].(string)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/clinics/"+clinicID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get clinic status %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/clinics/not-a-uuid", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed id status %d: %v", resp.StatusCode, body)
	}

	resp, product := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name": "Gauze", "category": "wound-care", "sku": "GZ-1", "price": 4.5, "unit": "box",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create product status %d: %v", resp.StatusCode, product)
	}

	// duplicate sku conflicts
	resp, body = doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name": "Gauze 2", "category": "wound-care", "sku": "GZ-1", "price": 5, "unit": "box",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate sku status %d: %v", resp.StatusCode, body)
	}
	if body["error"].(map[string]any)["code"] != "CONFLICT" {
		t.Fatalf("wrong code: %v", body)
	}

	resp, list := doJSON(t, app, http.MethodGet, "/api/products/?page=1&limit=10", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	if list["total_count"] != float64(1) || list["page"] != float64(1) {
		t.Fatalf("unexpected list envelope: %v", list)
	}
}

func TestOrderFlowOverHTTP(t *testing.T) {
	app, _ := setupApp(t)

	_, clinic := doJSON(t, app, http.MethodPost, "/api/clinics/", map[string]any{
		"name": "Downtown Clinic", "address": "12 Main St",
	})
	clinicID := clinic["id"].(string)

	_, product := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name": "Gauze", "category": "wound-care", "sku": "GZ-1", "price": 4.5, "unit": "box",
	})
	productID := product["id"].(string)

	resp, order := doJSON(t, app, http.MethodPost, "/api/orders/", map[string]any{
		"clinic_id": clinicID,
		"items":     []map[string]any{{"product_id": productID, "quantity": 4}},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create order status %d: %v", resp.StatusCode, order)
	}
	if order["status"] != "draft" || order["total"] != float64(18) {
		t.Fatalf("unexpected order: %v", order)
	}
	orderID := order["id"].(string)

	resp, body := doJSON(t, app, http.MethodPut, "/api/orders/"+orderID+"/status", map[string]any{
		"status": "pending",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status %d: %v", resp.StatusCode, body)
	}

	// illegal jump reports bad request
	resp, body = doJSON(t, app, http.MethodPut, "/api/orders/"+orderID+"/status", map[string]any{
		"status": "delivered",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("illegal transition status %d: %v", resp.StatusCode, body)
	}

	resp, missing := doJSON(t, app, http.MethodGet, "/api/orders/00000000-0000-0000-0000-0000000000aa", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing order status %d: %v", resp.StatusCode, missing)
	}
}

func TestInventoryOverHTTP(t *testing.T) {
	app, _ := setupApp(t)

	_, clinic := doJSON(t, app, http.MethodPost, "/api/clinics/", map[string]any{
		"name": "Downtown Clinic", "address": "12 Main St",
	})
	clinicID := clinic["id"].(string)

	_, product := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name": "Gauze", "category": "wound-care", "sku": "GZ-1", "price": 4.5, "unit": "box", "min_stock": 100,
	})
	productID := product["id"].(string)

	resp, row := doJSON(t, app, http.MethodPut, "/api/inventory/"+productID, map[string]any{
		"clinic_id": clinicID,
		"quantity":  50,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set stock status %d: %v", resp.StatusCode, row)
	}

	resp, list := doJSON(t, app, http.MethodGet, "/api/inventory/?clinic="+clinicID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %v", resp.StatusCode, list)
	}
	items := list["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0].(map[string]any)
	if item["quantity"] != float64(50) || item["status"] != "Low Stock" {
		t.Fatalf("unexpected item: %v", item)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status %d", resp.StatusCode)
	}
}
