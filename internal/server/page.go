package server

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Geetheshwar420/RandomWalk/internal/access"
	"github.com/Geetheshwar420/RandomWalk/internal/downloadlog"
	"github.com/Geetheshwar420/RandomWalk/internal/model"
)

type pageData struct {
	HasData    bool
	SeriesText string
	Stats      model.SeriesStats
	Error      string

	AdminState access.State
	LogEntries []downloadlog.Entry
	Token      string
}

func (d pageData) AdminHidden() bool       { return d.AdminState == access.Hidden }
func (d pageData) AdminDisabled() bool     { return d.AdminState == access.Disabled }
func (d pageData) AdminUnauthorized() bool { return d.AdminState == access.Unauthorized }
func (d pageData) AdminAuthorized() bool   { return d.AdminState == access.Authorized }

// renderPage renders the single-page UI. The admin gate is evaluated
// fresh from the query parameters on every render; log contents reach
// the template only in the Authorized state.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, id, errMsg string) {
	data := pageData{Error: errMsg}
	if series, ok := s.sessions.Get(id); ok {
		data.HasData = true
		data.SeriesText = seriesText(series)
		data.Stats = model.Stats(series)
	}

	q := r.URL.Query()
	token := q.Get("token")
	data.AdminState = access.Evaluate(access.Truthy(q.Get("admin")), token, s.adminToken)
	if data.AdminState == access.Authorized {
		entries, err := s.store.ReadAll()
		if err != nil {
			log.Printf("[ERROR] read download log: %v", err)
			http.Error(w, "failed to read download log", http.StatusInternalServerError)
			return
		}
		data.LogEntries = entries
		data.Token = token
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render page: %v", err)
	}
}

// seriesText renders the series as editable "time,price" lines.
func seriesText(series model.Series) string {
	var b strings.Builder
	for _, p := range series {
		b.WriteString(strconv.Itoa(p.Time))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Price, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Econophysics Random Walk</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; padding: 0 1em; }
section { margin-bottom: 2em; }
textarea { width: 20em; height: 16em; font-family: monospace; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
.error { color: #b00; }
.notice { color: #555; }
.stats span { display: inline-block; margin-right: 2em; }
</style>
</head>
<body>
<h1>Econophysics Random Walk</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

<section>
<h2>1. Data Input</h2>
<form method="post" action="/upload" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,.xlsx,.xlsm">
<button type="submit">Upload File (Excel/CSV)</button>
</form>
<form method="post" action="/generate">
<button type="submit">Generate Default Random Walk</button>
</form>
</section>

{{if .HasData}}
<section>
<h2>2. Edit Data</h2>
<form method="post" action="/data">
<textarea name="rows">{{.SeriesText}}</textarea><br>
<button type="submit">Update Data</button>
</form>
</section>

<section>
<h2>3. Random Walk Visualization</h2>
<img src="/chart.png" alt="Random walk chart">
</section>

<section>
<h2>4. Observation</h2>
<p class="notice">No smooth trend. Irregular fluctuations characteristic of a random walk.</p>
<p class="stats">
<span>Starting Price: {{printf "%.2f" .Stats.StartPrice}}</span>
<span>Ending Price: {{printf "%.2f" .Stats.EndPrice}}</span>
<span>Max Price: {{printf "%.2f" .Stats.MaxPrice}}</span>
<span>Min Price: {{printf "%.2f" .Stats.MinPrice}}</span>
</p>
</section>

<section>
<h2>Download Chart</h2>
<form method="post" action="/download">
<label>Your name: <input type="text" name="name"></label>
<label>Chart title: <input type="text" name="title"></label>
<button type="submit">Download PNG</button>
</form>
</section>
{{else}}
<p class="notice">Please upload a file or generate the default random walk to continue.</p>
{{end}}

{{if not .AdminHidden}}
<section>
<h2>Download Log (admin)</h2>
{{if .AdminDisabled}}
<p class="notice">Admin view is disabled: no admin token is configured.</p>
{{else if .AdminUnauthorized}}
<p class="error">Unauthorized: invalid admin token.</p>
{{else if .AdminAuthorized}}
<table>
<tr><th>Timestamp</th><th>Name</th><th>Title</th></tr>
{{range .LogEntries}}
<tr><td>{{.Timestamp}}</td><td>{{.Name}}</td><td>{{.Title}}</td></tr>
{{end}}
</table>
<p><a href="/admin/log.csv?token={{.Token}}">Download full log (CSV)</a></p>
{{end}}
</section>
{{end}}
</body>
</html>
`))
