package badge

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statscard/github-stats-card/internal/domain"
)

func TestRender_WithAvatar(t *testing.T) {
	avatar := []byte{0x89, 0x50, 0x4e, 0x47}
	record := &domain.UserStats{
		Username: "octocat",
		Name:     "The Octocat",
		Avatar:   avatar,
		Repos:    10, Followers: 20, Following: 7,
		Stars: 5, PRs: 3, Issues: 2, Commits: 10,
	}

	out, err := Render(record, domain.GradeB)
	require.NoError(t, err)
	svg := string(out)

	assert.Contains(t, svg, `viewBox="0 0 400 200"`)
	assert.Contains(t, svg, `base64,`+base64.StdEncoding.EncodeToString(avatar))
	assert.Contains(t, svg, `clip-path="url(#avatarClip)"`)
	assert.Contains(t, svg, ">The Octocat</text>")
	assert.Contains(t, svg, ">@octocat</text>")
	assert.Contains(t, svg, ">B</text>")
}

// TestRender_WithoutAvatar verifies the placeholder-only path: no image
// element, no clip path, no crash.
func TestRender_WithoutAvatar(t *testing.T) {
	record := &domain.UserStats{Username: "ghost", Name: "ghost"}

	out, err := Render(record, domain.GradeD)
	require.NoError(t, err)
	svg := string(out)

	assert.NotContains(t, svg, "<image")
	assert.NotContains(t, svg, "clipPath")
	assert.Contains(t, svg, `<circle cx="50" cy="50" r="40" fill="#21262d"/>`)
}

// TestRender_LiteralZeroes verifies all numeric fields render their literal
// value, including zero.
func TestRender_LiteralZeroes(t *testing.T) {
	record := &domain.UserStats{Username: "ghost", Name: "ghost"}

	out, err := Render(record, domain.GradeD)
	require.NoError(t, err)
	svg := string(out)

	for _, label := range []string{"Repositories", "Followers", "Stars", "PRs", "Commits", "Issues", "Following"} {
		assert.Contains(t, svg, ">"+label+"</text>")
	}
	assert.Contains(t, svg, `font-weight="600">0</text>`)
}

func TestRender_GradeColors(t *testing.T) {
	testCases := []struct {
		grade domain.Grade
		color string
	}{
		{domain.GradeS, "#FFD700"},
		{domain.GradeAPlus, "#00FF00"},
		{domain.GradeA, "#7CFC00"},
		{domain.GradeBPlus, "#87CEEB"},
		{domain.GradeB, "#ADD8E6"},
		{domain.GradeCPlus, "#FFA500"},
		{domain.GradeC, "#FF8C00"},
		{domain.GradeD, "#FF6347"},
	}

	record := &domain.UserStats{Username: "octocat", Name: "The Octocat"}
	for _, tc := range testCases {
		out, err := Render(record, tc.grade)
		require.NoError(t, err)
		assert.Contains(t, string(out), `stroke="`+tc.color+`"`)
	}
}

func TestRender_UnknownGrade(t *testing.T) {
	_, err := Render(&domain.UserStats{Username: "octocat"}, domain.Grade("E"))
	assert.Error(t, err)
}

// TestRender_EscapesMarkup keeps user-controlled names from breaking the
// document structure.
func TestRender_EscapesMarkup(t *testing.T) {
	record := &domain.UserStats{Username: "octocat", Name: "Tom & <Jerry>"}

	out, err := Render(record, domain.GradeD)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Tom &amp; &lt;Jerry&gt;")
	assert.NotContains(t, string(out), "<Jerry>")
}
