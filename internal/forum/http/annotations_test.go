package http

import (
	"bufio"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	routerAnnotation = regexp.MustCompile(`^//\s*@Router\s+(.*)$`)
	routerValue      = regexp.MustCompile(`^(/\S*)\s+\[(get|post|put|patch|delete)\]$`)
	pathParam        = regexp.MustCompile(`\{(\w+)\}`)
)

// TestRouterAnnotations keeps the swag @Router lines well formed and in step
// with the routes the mux actually serves.
func TestRouterAnnotations(t *testing.T) {
	ts := newTestServer(t)

	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	seen := 0
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}

		f, err := os.Open(name)
		require.NoError(t, err)

		sc := bufio.NewScanner(f)
		for line := 1; sc.Scan(); line++ {
			m := routerAnnotation.FindStringSubmatch(strings.TrimSpace(sc.Text()))
			if m == nil {
				continue
			}
			seen++

			v := routerValue.FindStringSubmatch(strings.TrimSpace(m[1]))
			require.NotNil(t, v, "%s:%d malformed @Router %q", name, line, m[1])

			path, method := v[1], strings.ToUpper(v[2])
			req := httptest.NewRequest(method, pathParam.ReplaceAllString(path, "$1"), nil)
			_, pattern := ts.router.Mux.Handler(req)
			require.Equal(t, method+" "+path, pattern, "%s:%d", name, line)
		}
		require.NoError(t, sc.Err())
		require.NoError(t, f.Close())
	}
	require.NotZero(t, seen)
}

func TestRouterAnnotationValue(t *testing.T) {
	require.NotNil(t, routerValue.FindStringSubmatch("/v1/threads [get]"))
	require.Nil(t, routerValue.FindStringSubmatch("/v1/threads [get]."))
	require.Nil(t, routerValue.FindStringSubmatch("v1/threads [get]"))
}
