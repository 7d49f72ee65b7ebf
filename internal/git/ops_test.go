package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSymrefHead(t *testing.T) {
	output := "ref: refs/heads/main\tHEAD\n42d4efb9e70efc42299b26cfbcdcbadf3ded1892\tHEAD\n"
	require.Equal(t, "main", ParseSymrefHead(output))
}

func TestParseSymrefHeadSlashedBranch(t *testing.T) {
	output := "ref: refs/heads/release/v2\tHEAD\n42d4efb9e70efc42299b26cfbcdcbadf3ded1892\tHEAD\n"
	require.Equal(t, "release/v2", ParseSymrefHead(output))
}

func TestParseSymrefHeadNoSymref(t *testing.T) {
	// Some servers answer HEAD without advertising the symbolic ref.
	output := "42d4efb9e70efc42299b26cfbcdcbadf3ded1892\tHEAD\n"
	require.Equal(t, "", ParseSymrefHead(output))

	require.Equal(t, "", ParseSymrefHead(""))
}
