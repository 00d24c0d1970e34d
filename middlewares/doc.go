// Package middlewares wires the localekit engine into net/http.
//
// # Locale
//
// Locale middleware runs the redirect state machine on every request and
// populates the context for downstream handlers:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(engine, middlewares.WithLocaleGeo(resolver)))
//
//	r.Get("/{locale}/products", func(w http.ResponseWriter, r *http.Request) {
//	    t := middlewares.GetTranslator(r.Context())
//	    fmt.Fprint(w, t.T("products.title"))
//	})
//
// Handlers read the serving locale with GetLocale, translate with
// GetTranslator, and render the "also available in" banner when
// GetRecommendation reports one.
//
// # ChangeLocale
//
// ChangeLocale handles explicit locale switches from a selector form:
//
//	r.Post("/select-locale", middlewares.ChangeLocale(engine).ServeHTTP)
//
// Register the selector path as a locale-agnostic route on the engine so
// the Locale middleware serves it without a locale prefix.
package middlewares
