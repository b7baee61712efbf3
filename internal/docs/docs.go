// Package docs registers the OpenAPI description served under /swagger.
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
        "/rule": {
            "get": {"tags": ["rule"], "summary": "Get the round-up rule", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "No rule configured"}}},
            "put": {"tags": ["rule"], "summary": "Create or replace the round-up rule", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}
        },
        "/purchases": {
            "get": {"tags": ["purchases"], "summary": "List purchases", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["purchases"], "summary": "Record a purchase", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/ledger": {
            "get": {"tags": ["ledger"], "summary": "List ledger entries", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/ledger/pending": {
            "get": {"tags": ["ledger"], "summary": "Pending round-ups", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/invest": {
            "post": {"tags": ["invest"], "summary": "Sweep pending round-ups into lots", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/invest/lots": {
            "get": {"tags": ["invest"], "summary": "List invest lots", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/feed": {
            "get": {"tags": ["feed"], "summary": "Dashboard feed", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/statement": {
            "get": {"tags": ["statement"], "summary": "Monthly statement", "produces": ["text/html", "text/markdown"], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}
        },
        "/admin/migrations": {
            "post": {"tags": ["admin"], "summary": "Apply pending migrations", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid token"}, "503": {"description": "Not configured"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Gulf Acorns API",
	Description:      "Spare-change round-ups for a demo user, swept into invest lots.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
