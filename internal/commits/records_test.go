package commits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatusListing(t *testing.T) {
	testCases := []struct {
		name     string
		listing  string
		expected []ChangeRecord
	}{
		{
			name:     "empty_listing",
			listing:  "",
			expected: []ChangeRecord{},
		},
		{
			name:     "staged_modification",
			listing:  "M  backend/app.py\n",
			expected: []ChangeRecord{{StatusCode: "M", Path: "backend/app.py"}},
		},
		{
			name:    "preserves_listing_order",
			listing: "A  backend/package.json\n M README.md\n?? notes.txt\n",
			expected: []ChangeRecord{
				{StatusCode: "A", Path: "backend/package.json"},
				{StatusCode: "M", Path: "README.md"},
				{StatusCode: "??", Path: "notes.txt"},
			},
		},
		{
			name:     "rename_resolves_to_destination",
			listing:  "R  old/name.go -> new/name.go\n",
			expected: []ChangeRecord{{StatusCode: "R", Path: "new/name.go"}},
		},
		{
			name:     "drops_lines_with_fewer_than_two_tokens",
			listing:  "M\n   \n\nMM src/main.go\r\n",
			expected: []ChangeRecord{{StatusCode: "MM", Path: "src/main.go"}},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, ParseStatusListing(testCase.listing))
		})
	}
}

func TestCommitMessageUsesBaseName(t *testing.T) {
	require.Equal(t, "Update app.py", CommitMessage("backend/app.py"))
	require.Equal(t, "Update README.md", CommitMessage("README.md"))
	require.Equal(t, "Update name.go", CommitMessage("a/b/c/name.go"))
}
