package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// IndexPage renders the landing page with the microbe list upload form
// and the browse-everything shortcut.
func IndexPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="upload-panel">
<h2>Explore microbe, host and condition associations</h2>
<p>Upload a list of microbes (CSV, TSV or XLSX with a <code>Microbe</code> column) to match it against the reference table, or browse the full dataset.</p>
<form hx-post="/api/sessions" hx-encoding="multipart/form-data" hx-target="#upload-status" hx-swap="innerHTML">
<input type="file" name="file" accept=".csv,.tsv,.xlsx" required>
<button type="submit">Upload and match</button>
</form>
<form hx-post="/api/sessions" hx-target="#upload-status" hx-swap="innerHTML">
<input type="hidden" name="mode" value="all">
<button type="submit" class="secondary">Browse entire dataset</button>
</form>
<div id="upload-status"></div>
</section>
`)
		return err
	})
	return page("Microbiome Explorer", body)
}
