package main

import "net/http"

// 4xx conditions answer with status "fail", 5xx with status "error"; the
// routing layer owns this mapping, services only return tagged errors.

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJson(w, http.StatusBadRequest, envelope{Status: "fail", Message: err.Error()})
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJson(w, http.StatusNotFound, envelope{Status: "fail", Message: err.Error()})
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJson(w, http.StatusTooManyRequests, envelope{Status: "fail", Message: "rate limit exceeded, retry after: " + retryAfter})
}

func (app *application) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("upstream error", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJson(w, http.StatusInternalServerError, envelope{Status: "error", Message: err.Error()})
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJson(w, http.StatusInternalServerError, envelope{Status: "error", Message: "the server encountered a problem"})
}
