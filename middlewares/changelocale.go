package middlewares

import (
	"errors"
	"net/http"

	"github.com/pabio/localekit"
)

// ChangeLocale returns a handler for explicit locale switches, typically the
// target of a locale-selector form. It reads the requested slug from the
// "locale" form value (or query parameter) and the path to return to from
// "returnTo", persists the choice, and redirects to the locale-prefixed
// return path. An unsupported slug is rejected with 400 and a message
// listing the valid slugs.
func ChangeLocale(engine *localekit.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := r.FormValue("locale")
		returnTo := r.FormValue("returnTo")

		d, err := engine.ChangeLocale(slug, engine.StripLocale(returnTo))
		if err != nil {
			var unsupported *localekit.UnsupportedLocaleError
			if errors.As(err, &unsupported) {
				http.Error(w, unsupported.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		engine.Preferences().Write(w, d.Persist)
		http.Redirect(w, r, d.Target, http.StatusFound)
	})
}
