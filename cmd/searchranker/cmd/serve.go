package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"fuzzytrie/internal/dictionary"
	"fuzzytrie/internal/ranking"
)

var (
	termsPath string
	addr      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP scoring server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&termsPath, "terms", "", "path to a term\\tweight dictionary file (required)")
	serveCmd.Flags().StringVar(&addr, "addr", ":8081", "address to listen on")
	_ = serveCmd.MarkFlagRequired("terms")
}

// scoreRequest is the body of POST /score: the text to scan for
// dictionary terms.
type scoreRequest struct {
	Text string `json:"text" binding:"required"`
}

// scoreResponse reports the aggregate score and the per-term hit
// counts that produced it.
type scoreResponse struct {
	Score float64        `json:"score"`
	Hits  map[string]int `json:"hits"`
}

// handler wires a ranking.Scorer to gin's request/response cycle.
type handler struct {
	scorer *ranking.Scorer
}

func newHandler(scorer *ranking.Scorer) *handler {
	return &handler{scorer: scorer}
}

func (h *handler) registerRoutes(r *gin.Engine) {
	r.POST("/score", h.score)
	r.GET("/health", h.health)
}

func (h *handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := []byte(req.Text)
	c.JSON(http.StatusOK, scoreResponse{
		Score: h.scorer.Score(text),
		Hits:  h.scorer.Hits(text),
	})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func runServe(cmd *cobra.Command, args []string) error {
	f, err := os.Open(termsPath)
	if err != nil {
		return fmt.Errorf("opening terms dictionary: %w", err)
	}
	defer f.Close()

	weights, err := dictionary.LoadWeighted(f)
	if err != nil {
		return err
	}

	terms := make([]string, 0, len(weights))
	for term := range weights {
		terms = append(terms, term)
	}
	scorer := ranking.NewScorer(terms, weights)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	newHandler(scorer).registerRoutes(router)

	logger.Info("listening", "addr", addr, "terms", len(terms))
	return router.Run(addr)
}
