// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/hadaf_backend/main.go -o cmd/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["health"], "summary": "Show the status of server.", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Database unreachable"}}}},
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create a category", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error or invalid parent"}, "409": {"description": "Duplicate name"}}}
        },
        "/categories/{id}": {
            "get": {"tags": ["categories"], "summary": "Get a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["categories"], "summary": "Rename or re-parent a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad request"}, "404": {"description": "Not found"}, "409": {"description": "Duplicate name"}}},
            "delete": {"tags": ["categories"], "summary": "Delete a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/categories/{id}/stats": {"get": {"tags": ["categories"], "summary": "Category totals", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List ledger entries", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad request"}}},
            "post": {"tags": ["transactions"], "summary": "Record a ledger entry", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad request"}}}
        },
        "/transactions/{id}": {
            "get": {"tags": ["transactions"], "summary": "Get a ledger entry", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["transactions"], "summary": "Update a ledger entry", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad request"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["transactions"], "summary": "Delete a ledger entry", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/recurring": {
            "get": {"tags": ["recurring"], "summary": "List recurring templates", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["recurring"], "summary": "Create a recurring template", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad request"}}}
        },
        "/recurring/due": {"get": {"tags": ["recurring"], "summary": "List due templates", "parameters": [{"type": "string", "name": "asOf", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/recurring/{id}": {
            "get": {"tags": ["recurring"], "summary": "Get a recurring template", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["recurring"], "summary": "Update a recurring template", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad request"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["recurring"], "summary": "Delete a recurring template", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/recurring/{id}/execute": {"post": {"tags": ["recurring"], "summary": "Ensure the current installment exists", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Existing installment"}, "201": {"description": "Installment created"}, "400": {"description": "Template inactive"}, "404": {"description": "Not found"}}}},
        "/dashboard/summary": {"get": {"tags": ["dashboard"], "summary": "Dashboard summary", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/follow-ups": {"get": {"tags": ["dashboard"], "summary": "Follow-up queue", "responses": {"200": {"description": "OK"}}}},
        "/export/csv": {"get": {"tags": ["export"], "summary": "Export done entries as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}},
        "/export/backup": {"get": {"tags": ["export"], "summary": "Download a database snapshot", "produces": ["application/octet-stream"], "responses": {"200": {"description": "SQLite file"}, "501": {"description": "Not supported by the driver"}}}},
        "/export/excel": {"get": {"tags": ["export"], "summary": "Excel export", "responses": {"501": {"description": "Not implemented"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Hadaf Accounting API",
	Description:      "Bookkeeping backend: categories, ledger entries and recurring templates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
