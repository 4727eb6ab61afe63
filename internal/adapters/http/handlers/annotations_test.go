package handlers

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/mocks"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

// apiHandlers returns "Receiver.Method" -> @Router annotation ("METHOD
// path", or "" when missing) for every gin handler method in file.
func apiHandlers(t *testing.T, file string) map[string]string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ParseComments)
	require.NoError(t, err)

	found := make(map[string]string)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || !isGinHandler(fn) {
			continue
		}

		recv := fn.Recv.List[0].Type.(*ast.StarExpr).X.(*ast.Ident).Name
		route := ""
		if m := routerAnnotation.FindStringSubmatch(fn.Doc.Text()); m != nil {
			route = strings.ToUpper(m[2]) + " " + m[1]
		}
		found[recv+"."+fn.Name.Name] = route
	}
	return found
}

func isGinHandler(fn *ast.FuncDecl) bool {
	params := fn.Type.Params.List
	if len(params) != 1 || fn.Type.Results != nil {
		return false
	}
	star, ok := params[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	return ok && sel.Sel.Name == "Context"
}

func TestAPIHandlers_AnnotatedWithRegisteredRoutes(t *testing.T) {
	router := gin.New()
	api := router.Group("/api/v1")
	NewQuaternionHandler(mocks.NewMockQuaternionEvaluator(t)).RegisterQuaternionRoutes(api)
	NewExerciseHandler(mocks.NewMockExerciseRunner(t)).RegisterExerciseRoutes(api)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	annotated := 0
	for _, file := range []string{"quaternion.go", "exercises.go"} {
		for handler, route := range apiHandlers(t, file) {
			if !assert.NotEmpty(t, route, "%s has no @Router annotation", handler) {
				continue
			}
			assert.True(t, registered[route], "%s documents %s, which is not registered", handler, route)
			annotated++
		}
	}

	assert.Len(t, registered, annotated, "every /api/v1 route has one documented handler")
}
