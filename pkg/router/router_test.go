package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/orderdesk/pkg/router"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body)) //nolint:errcheck
	}
}

func TestGroupPathJoining(t *testing.T) {
	r := router.New()

	api := r.Group("/api")
	api.Get("/order", "orders.index", okHandler("orders"))

	nested := api.Group("/admin")
	nested.Get("/stats", "admin.stats", okHandler("stats"))

	path, ok := r.Path("orders.index")
	require.True(t, ok)
	assert.Equal(t, "/api/order", path)

	path, ok = r.Path("admin.stats")
	require.True(t, ok)
	assert.Equal(t, "/api/admin/stats", path)
}

func TestURLBuildsNamedRoute(t *testing.T) {
	r := router.New()
	r.Get("/api/order/{id}", "orders.show", okHandler("one"))

	url, err := r.URL("orders.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/order/42", url)

	_, err = r.URL("orders.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing.route", nil)
	assert.Error(t, err)
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/order", "orders.index", okHandler("list"))
	api.Post("/orders", "orders.store", okHandler("create"))
	api.Put("/orders/{id}", "orders.update", okHandler("update"))
	api.Delete("/orders/{id}", "orders.destroy", okHandler("delete"))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/orders/1", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Wrong method on a known path is rejected by the mux.
	resp2, err := http.Get(srv.URL + "/api/orders/1")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestRoutesListingSorted(t *testing.T) {
	r := router.New()
	r.Post("/b", "b.store", okHandler(""))
	r.Get("/a", "a.index", okHandler(""))

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "/a", infos[0].Path)
	assert.Equal(t, "/b", infos[1].Path)
}

func TestMiddlewareOrdering(t *testing.T) {
	r := router.New()

	var trace []string
	mw := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				trace = append(trace, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	g := r.Group("/api", mw("group"))
	g.Get("/x", "x", okHandler("x"), mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, []string{"group", "route"}, trace)
}
