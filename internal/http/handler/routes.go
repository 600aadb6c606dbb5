package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"servidoc/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, users service.UserService, servidores service.ServidorService, documents service.DocumentService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Probes
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Credentials
	app.Post("/login", Login(users))
	app.Post("/cadastro", RegisterUser(users))

	// Servidor records
	app.Post("/cadastro_servidor", RegisterServidor(servidores))
	app.Get("/consulta_servidor", QueryServidores(servidores))

	// Documents
	app.Post("/upload", UploadDocument(documents))
	app.Get("/download/:id", DownloadDocument(documents))
	app.Get("/consulta_documentos", QueryDocuments(documents))
	app.Get("/consulta_documentos_", ListAllDocuments(documents))
}
