package main

import (
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gogpu/tessella"
	"github.com/gogpu/tessella/glyph"
	"github.com/gogpu/tessella/poem"
)

var (
	flagPort int

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve an animated pattern page over HTTP",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().IntVarP(&flagPort, "port", "p", 8000, "listen port")
}

// patternServer regenerates a fresh pattern for every /pattern request.
// The random source is shared across requests, so access is serialized.
type patternServer struct {
	mu     sync.Mutex
	rng    *tessella.Rand
	gen    *poem.Generator
	width  int
	height int
}

type patternResponse struct {
	Pattern string   `json:"pattern"`
	Group   string   `json:"group"`
	Poem    []string `json:"poem"`
}

func (s *patternServer) next() (patternResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, err := tessella.Pick(s.rng, tessella.Groups())
	if err != nil {
		return patternResponse{}, err
	}
	rules, err := tessella.RulesFor(group)
	if err != nil {
		return patternResponse{}, err
	}

	canvas := glyph.NewCanvas(s.width, s.height)
	if err := canvas.RenderPattern(s.rng, group, rules, glyph.Selection(s.rng, 200), 0); err != nil {
		return patternResponse{}, err
	}
	lines := s.gen.Lines(s.rng, s.gen.NextSeed(s.rng), 2)
	canvas.EmbedPoem(s.rng, lines)

	return patternResponse{
		Pattern: canvas.Text(),
		Group:   string(group),
		Poem:    lines,
	}, nil
}

var animationPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>I NEVER PICKED A PROTECTED FLOWER EXCEPT FOR YOU</title>
	<style>
		body { background-color: #fff; color: #000; margin: 20px; font-family: monospace; }
		#pattern { white-space: pre; line-height: 1; font-size: 14px; }
		#group { margin-bottom: 10px; color: #666; }
	</style>
</head>
<body>
<div id="group"></div>
<div id="pattern"></div>
<script>
	async function refresh() {
		const res = await fetch('/pattern');
		const data = await res.json();
		document.getElementById('group').textContent = 'group: ' + data.group;
		document.getElementById('pattern').textContent = data.pattern;
	}
	refresh();
	setInterval(refresh, {{.IntervalMS}});
</script>
</body>
</html>
`))

func runServe(cmd *cobra.Command, args []string) error {
	srv := &patternServer{
		rng:    newRand(),
		gen:    poem.NewGenerator(nil),
		width:  flagWidth,
		height: flagHeight,
	}

	if !flagVerbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := animationPage.Execute(c.Writer, map[string]any{"IntervalMS": 2000}); err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
		}
	})
	router.GET("/pattern", func(c *gin.Context) {
		resp, err := srv.next()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	addr := fmt.Sprintf(":%d", flagPort)
	tessella.Logger().Info("pattern server listening", "addr", addr)
	fmt.Printf("serving patterns at http://localhost%s/\n", addr)
	return router.Run(addr)
}
