// Package badge renders aggregated user stats as a fixed-layout SVG card.
package badge

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"text/template"

	"github.com/statscard/github-stats-card/internal/domain"
)

// gradeColors is the fixed palette, one color per grade.
var gradeColors = map[domain.Grade]string{
	domain.GradeS:     "#FFD700",
	domain.GradeAPlus: "#00FF00",
	domain.GradeA:     "#7CFC00",
	domain.GradeBPlus: "#87CEEB",
	domain.GradeB:     "#ADD8E6",
	domain.GradeCPlus: "#FFA500",
	domain.GradeC:     "#FF8C00",
	domain.GradeD:     "#FF6347",
}

// cardData is the flattened view the template renders.
type cardData struct {
	Name         string
	Username     string
	AvatarBase64 string
	Grade        string
	GradeColor   string
	Repos        int
	Followers    int
	Following    int
	Stars        int
	PRs          int
	Issues       int
	Commits      int
}

var cardTemplate = template.Must(template.New("card").Parse(cardSVG))

// Render produces the SVG card for one user. It is a pure function of the
// record and grade: the avatar placeholder circle is always drawn, and the
// avatar image is embedded base64 only when avatar bytes are present.
func Render(s *domain.UserStats, grade domain.Grade) ([]byte, error) {
	color, ok := gradeColors[grade]
	if !ok {
		return nil, fmt.Errorf("no color defined for grade %q", grade)
	}

	data := cardData{
		Name:       template.HTMLEscapeString(s.Name),
		Username:   template.HTMLEscapeString(s.Username),
		Grade:      string(grade),
		GradeColor: color,
		Repos:      s.Repos,
		Followers:  s.Followers,
		Following:  s.Following,
		Stars:      s.Stars,
		PRs:        s.PRs,
		Issues:     s.Issues,
		Commits:    s.Commits,
	}
	if len(s.Avatar) > 0 {
		data.AvatarBase64 = base64.StdEncoding.EncodeToString(s.Avatar)
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render card template: %w", err)
	}
	return buf.Bytes(), nil
}

// cardSVG is the fixed 400x200 card layout: identity block on the top left,
// grade ring on the top right, two rows of four labeled fields below.
const cardSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200" viewBox="0 0 400 200">
  <defs>
    <linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#0d1117;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#161b22;stop-opacity:1" />
    </linearGradient>{{if .AvatarBase64}}
    <clipPath id="avatarClip">
      <circle cx="50" cy="50" r="40"/>
    </clipPath>{{end}}
  </defs>

  <!-- Background -->
  <rect width="400" height="200" rx="10" fill="url(#bg)" stroke="#30363d" stroke-width="1"/>

  <!-- Avatar -->
  <circle cx="50" cy="50" r="40" fill="#21262d"/>
  {{if .AvatarBase64}}<image x="10" y="10" width="80" height="80" href="data:image/png;base64,{{.AvatarBase64}}" clip-path="url(#avatarClip)"/>{{end}}

  <!-- Name and Username -->
  <text x="100" y="40" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="18" font-weight="600">{{.Name}}</text>
  <text x="100" y="60" fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="12">@{{.Username}}</text>

  <!-- Grade -->
  <circle cx="360" cy="45" r="30" fill="none" stroke="{{.GradeColor}}" stroke-width="3"/>
  <text x="360" y="52" fill="{{.GradeColor}}" font-family="Segoe UI, Ubuntu, sans-serif" font-size="20" font-weight="700" text-anchor="middle">{{.Grade}}</text>

  <!-- Stats Grid -->
  <g transform="translate(20, 100)">
    <!-- Row 1 -->
    <g transform="translate(0, 0)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">Repositories</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.Repos}}</text>
    </g>
    <g transform="translate(90, 0)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">Followers</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.Followers}}</text>
    </g>
    <g transform="translate(180, 0)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">Stars</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.Stars}}</text>
    </g>
    <g transform="translate(270, 0)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">PRs</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.PRs}}</text>
    </g>

    <!-- Row 2 -->
    <g transform="translate(0, 50)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">Commits</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.Commits}}</text>
    </g>
    <g transform="translate(90, 50)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">Issues</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.Issues}}</text>
    </g>
    <g transform="translate(180, 50)">
      <text fill="#8b949e" font-family="Segoe UI, Ubuntu, sans-serif" font-size="11">Following</text>
      <text y="18" fill="#ffffff" font-family="Segoe UI, Ubuntu, sans-serif" font-size="16" font-weight="600">{{.Following}}</text>
    </g>
  </g>
</svg>
`
