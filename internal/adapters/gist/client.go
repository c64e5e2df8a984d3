package gist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// UpdateFile reemplaza la descripción del gist y el contenido de un archivo.
// Los demás archivos del gist no se tocan.
func (c *Client) UpdateFile(ctx context.Context, gistID, description, filename, content string) error {
	in := updateGistDTO{
		Description: description,
		Files:       map[string]fileDTO{filename: {Content: content}},
	}
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/gists/%s", url.PathEscape(gistID)), in, nil)
}
