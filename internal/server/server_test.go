package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/julianshen/buildgen/internal/server"
)

func do(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			Expect(json.NewEncoder(&buf).Encode(b)).To(Succeed())
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}

var _ = Describe("Server", func() {
	var h http.Handler

	BeforeEach(func() {
		h = server.New(server.Options{SessionTTL: time.Hour}).Handler()
	})

	It("reports health", func() {
		w := do(h, http.MethodGet, "/health", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["status"]).To(Equal("ok"))
	})

	It("echoes or assigns a request id", func() {
		w := do(h, http.MethodGet, "/health", nil)
		Expect(w.Header().Get("X-Request-ID")).NotTo(BeEmpty())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		Expect(rec.Header().Get("X-Request-ID")).To(Equal("abc-123"))
	})

	It("lists options for every step", func() {
		w := do(h, http.MethodGet, "/api/v1/options", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp server.OptionsResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Steps).To(HaveLen(3))
		Expect(resp.Steps[0].Options).To(HaveLen(8))
		Expect(resp.Steps[0].Options[0]).To(Equal("Fintech"))
		Expect(resp.Steps[1].Options).To(Equal([]string{"Solo Builder", "Student Team", "Early-stage Startup"}))
		Expect(resp.Steps[2].Options).To(Equal([]string{"24 hours", "A Weekend", "A Month"}))
		Expect(resp.Tabs).To(HaveLen(8))
		Expect(resp.Formats).To(ContainElement("markdown"))
	})

	Describe("POST /api/v1/ideas", func() {
		It("composes an idea as JSON", func() {
			w := do(h, http.MethodPost, "/api/v1/ideas", map[string]string{
				"space": "Fintech", "vibe": "Early-stage Startup", "time": "24 hours",
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			resp := decode(w)
			Expect(resp["name"]).To(Equal("CashFlow"))
			Expect(resp["tasks"]).To(HaveLen(5))
			stack := resp["stack"].(map[string]interface{})
			Expect(stack["other"]).To(Equal("Analytics + CRM integration"))
		})

		It("falls back for unknown values", func() {
			w := do(h, http.MethodPost, "/api/v1/ideas", map[string]string{"space": "Gaming"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["name"]).To(Equal("FlowTrack"))
		})

		It("renders markdown when asked", func() {
			w := do(h, http.MethodPost, "/api/v1/ideas?format=markdown", map[string]string{
				"space": "Health", "vibe": "Solo Builder", "time": "A Month",
			})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/markdown"))
			Expect(w.Body.String()).To(ContainSubstring("## Stack Recommendation"))
		})

		It("renders yaml when asked", func() {
			w := do(h, http.MethodPost, "/api/v1/ideas?format=yaml", map[string]string{"space": "Creator Tools"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("application/yaml"))
			Expect(w.Body.String()).To(ContainSubstring("flow_diagram:"))
		})

		It("rejects an unknown format", func() {
			w := do(h, http.MethodPost, "/api/v1/ideas?format=xml", map[string]string{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed JSON", func() {
			w := do(h, http.MethodPost, "/api/v1/ideas", "{not json")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).NotTo(BeEmpty())
		})
	})

	Describe("sessions", func() {
		var id string

		path := func(suffix string) string {
			return "/api/v1/sessions/" + id + suffix
		}

		BeforeEach(func() {
			w := do(h, http.MethodPost, "/api/v1/sessions", nil)
			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decode(w)
			id = resp["id"].(string)
			Expect(resp["step"]).To(BeEquivalentTo(1))
			Expect(resp["finished"]).To(BeFalse())
		})

		It("returns the session", func() {
			w := do(h, http.MethodGet, path(""), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["id"]).To(Equal(id))
		})

		It("returns 404 for an unknown session", func() {
			w := do(h, http.MethodGet, "/api/v1/sessions/missing", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))

			w = do(h, http.MethodPost, "/api/v1/sessions/missing/advance", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("blocks advancing without a selection", func() {
			w := do(h, http.MethodPost, path("/advance"), nil)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["error"]).To(ContainSubstring("no selection"))
		})

		It("blocks retreating from the first step", func() {
			w := do(h, http.MethodPost, path("/retreat"), nil)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("blocks finishing before the final step", func() {
			w := do(h, http.MethodPost, path("/finish"), nil)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("requires a selection value", func() {
			w := do(h, http.MethodPut, path("/selection"), map[string]string{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("walks the wizard to an idea", func() {
			for _, v := range []string{"Education", "Student Team"} {
				Expect(do(h, http.MethodPut, path("/selection"), map[string]string{"value": v}).Code).To(Equal(http.StatusOK))
				Expect(do(h, http.MethodPost, path("/advance"), nil).Code).To(Equal(http.StatusOK))
			}
			Expect(do(h, http.MethodPut, path("/selection"), map[string]string{"value": "A Month"}).Code).To(Equal(http.StatusOK))

			w := do(h, http.MethodGet, path("/idea"), nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))

			w = do(h, http.MethodPost, path("/advance"), nil)
			Expect(w.Code).To(Equal(http.StatusConflict), "the final step is left through finish")

			w = do(h, http.MethodPost, path("/finish"), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["finished"]).To(BeTrue())
			Expect(resp["tab"]).To(Equal("stack"))

			w = do(h, http.MethodGet, path("/idea"), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			doc := decode(w)
			Expect(doc["name"]).To(Equal("LearnLoop"))
			Expect(doc["tasks"]).To(HaveLen(10))
			Expect(doc["stack"].(map[string]interface{})["backend"]).To(Equal("Firebase"))

			w = do(h, http.MethodGet, path("/idea?format=markdown"), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("`Student Team`"))
		})

		It("drops the idea when a selection changes after finishing", func() {
			for _, v := range []string{"Fintech", "Solo Builder"} {
				do(h, http.MethodPut, path("/selection"), map[string]string{"value": v})
				do(h, http.MethodPost, path("/advance"), nil)
			}
			do(h, http.MethodPut, path("/selection"), map[string]string{"value": "24 hours"})
			Expect(do(h, http.MethodPost, path("/finish"), nil).Code).To(Equal(http.StatusOK))

			do(h, http.MethodPost, path("/retreat"), nil)
			do(h, http.MethodPost, path("/retreat"), nil)
			w := do(h, http.MethodPut, path("/selection"), map[string]string{"value": "Education"})
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["finished"]).To(BeFalse())
			Expect(resp).NotTo(HaveKey("idea"))

			w = do(h, http.MethodGet, path("/idea"), nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("keeps selections when retreating", func() {
			do(h, http.MethodPut, path("/selection"), map[string]string{"value": "Food"})
			do(h, http.MethodPost, path("/advance"), nil)

			w := do(h, http.MethodPost, path("/retreat"), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["step"]).To(BeEquivalentTo(1))
			Expect(resp["selection"].(map[string]interface{})["space"]).To(Equal("Food"))
		})

		It("switches tabs and rejects unknown ones", func() {
			w := do(h, http.MethodPut, path("/tab"), map[string]string{"tab": "erd"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["tab"]).To(Equal("erd"))

			w = do(h, http.MethodPut, path("/tab"), map[string]string{"tab": "pricing"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("resets to an empty wizard", func() {
			do(h, http.MethodPut, path("/selection"), map[string]string{"value": "Logistics"})
			do(h, http.MethodPost, path("/advance"), nil)

			w := do(h, http.MethodPost, path("/reset"), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["step"]).To(BeEquivalentTo(1))
			Expect(resp["selection"].(map[string]interface{})["space"]).To(BeEmpty())
		})

		It("deletes the session", func() {
			Expect(do(h, http.MethodDelete, path(""), nil).Code).To(Equal(http.StatusNoContent))
			Expect(do(h, http.MethodGet, path(""), nil).Code).To(Equal(http.StatusNotFound))
			Expect(do(h, http.MethodDelete, path(""), nil).Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("rate limiting", func() {
		It("returns 429 once the burst is spent", func() {
			limited := server.New(server.Options{RateLimit: 0.001, Burst: 2}).Handler()

			Expect(do(limited, http.MethodGet, "/health", nil).Code).To(Equal(http.StatusOK))
			Expect(do(limited, http.MethodGet, "/health", nil).Code).To(Equal(http.StatusOK))
			w := do(limited, http.MethodGet, "/health", nil)
			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(decode(w)["error"]).To(Equal("rate limit exceeded"))
		})
	})
})
