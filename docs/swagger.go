// Package docs FloatChat Backend API.
//
// Backend for conversational exploration of ARGO oceanographic float
// data. Answers natural-language questions with tabular results and
// chart suggestions, plans relay routes from floats to ports, shares
// conversations by QR link and builds emergency contact deep links.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- image/png
//
// swagger:meta
package docs
