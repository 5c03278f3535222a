// Package render produces the HTML fragment shown in the dashboard output
// region. Templates escape all API-provided text.
package render

import (
	"html/template"
	"strings"

	"profiledash/internal/models"
)

// maxTitles caps how many post titles the fragment lists.
const maxTitles = 5

var profileTmpl = template.Must(template.New("profile").Parse(`<div class="profile">
  <h2>{{.User.Name}} <small>@{{.User.Username}}</small></h2>
  <p>{{.User.Email}} &middot; {{.User.Address.City}} &middot; {{.User.Company.Name}}</p>
  <ul class="posts">
{{- range .Titles}}
    <li>{{.}}</li>
{{- end}}
  </ul>
</div>
`))

type profileData struct {
	User   models.User
	Titles []string
}

// Profile formats a user and their posts as the region fragment: name,
// username, email, city, company, and the first five post titles.
func Profile(user models.User, posts []models.Post) (string, error) {
	titles := make([]string, 0, maxTitles)
	for _, p := range posts {
		if len(titles) == maxTitles {
			break
		}
		titles = append(titles, p.Title)
	}

	var b strings.Builder
	if err := profileTmpl.Execute(&b, profileData{User: user, Titles: titles}); err != nil {
		return "", err
	}
	return b.String(), nil
}
