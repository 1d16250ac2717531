package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/clemenssielaff/ZodiacGraph/pkg/buildinfo"
	apperrors "github.com/clemenssielaff/ZodiacGraph/pkg/errors"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/io"
	"github.com/clemenssielaff/ZodiacGraph/pkg/layout"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render/nodelink"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render/ringsvg"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	stylePath string // optional style TOML file
}

// serveCommand creates the serve command, a small HTTP service that lays out
// and renders scenes posted to it.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout and rendering over HTTP",
		Long: `Serve starts an HTTP service for scene layout and rendering.

Endpoints:
  GET  /healthz          liveness check
  GET  /version          build information
  POST /layout           scene JSON in, placement JSON out
  POST /render           scene JSON in, rendered bytes out
                         query: type=ring|nodelink, format=svg|pdf|png|dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStyle(opts.stylePath)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), opts.addr, st)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "style TOML file (defaults to built-in style)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, st style.Style) error {
	srv := &sceneServer{cli: c, style: st}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", srv.handleHealth)
	r.Get("/version", srv.handleVersion)
	r.Post("/layout", srv.handleLayout)
	r.Post("/render", srv.handleRender)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

// sceneServer holds the immutable per-process state behind the HTTP handlers.
type sceneServer struct {
	cli   *CLI
	style style.Style
}

func (s *sceneServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *sceneServer) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// placementResponse is the JSON shape returned by POST /layout.
type placementResponse struct {
	Nodes []nodePlacement `json:"nodes"`
}

type nodePlacement struct {
	Name   string          `json:"name"`
	Radius float64         `json:"radius"`
	Zones  int             `json:"zones"`
	Plugs  []plugPlacement `json:"plugs"`
}

type plugPlacement struct {
	Name      string  `json:"name"`
	Direction string  `json:"direction"`
	Zone      int     `json:"zone"`
	AngleDeg  float64 `json:"angle_deg"`
	SweepDeg  float64 `json:"sweep_deg"`
}

func (s *sceneServer) handleLayout(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.readScene(w, r)
	if !ok {
		return
	}
	layout.LayoutScene(scene, s.style)

	var resp placementResponse
	for _, n := range sortedNodes(scene) {
		res := layout.Pass(n, s.style)
		np := nodePlacement{
			Name:   n.Name(),
			Radius: n.Radius(),
			Zones:  res.ZoneCount,
		}
		for _, pl := range res.Placements {
			np.Plugs = append(np.Plugs, plugPlacement{
				Name:      pl.Plug.Name(),
				Direction: pl.Plug.Direction().String(),
				Zone:      pl.Zone,
				AngleDeg:  pl.Angle * 180 / math.Pi,
				SweepDeg:  pl.Sweep * 180 / math.Pi,
			})
		}
		resp.Nodes = append(resp.Nodes, np)
	}
	writeJSON(w, resp)
}

func (s *sceneServer) handleRender(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.readScene(w, r)
	if !ok {
		return
	}
	layout.LayoutScene(scene, s.style)

	vizType := r.URL.Query().Get("type")
	if vizType == "" {
		vizType = vizRing
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}

	data, contentType, err := s.renderFor(scene, vizType, format)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeRender) {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

func (s *sceneServer) renderFor(scene *graph.Scene, vizType, format string) ([]byte, string, error) {
	switch vizType {
	case vizRing:
		svg := ringsvg.Render(scene, s.style)
		switch format {
		case "svg":
			return svg, "image/svg+xml", nil
		case "pdf":
			data, err := render.ToPDF(svg)
			return data, "application/pdf", wrapRender(err, "ring pdf")
		case "png":
			data, err := render.ToPNG(svg, defaultPNGScale)
			return data, "image/png", wrapRender(err, "ring png")
		}
	case vizNodelink:
		dot := nodelink.ToDOT(scene, nodelink.Options{})
		switch format {
		case "dot":
			return []byte(dot), "text/vnd.graphviz", nil
		case "svg":
			data, err := nodelink.RenderSVG(dot)
			return data, "image/svg+xml", wrapRender(err, "nodelink svg")
		case "pdf":
			data, err := nodelink.RenderPDF(dot)
			return data, "application/pdf", wrapRender(err, "nodelink pdf")
		case "png":
			data, err := nodelink.RenderPNG(dot, defaultPNGScale)
			return data, "image/png", wrapRender(err, "nodelink png")
		}
	default:
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown visualization type: %s", vizType)
	}
	return nil, "", apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported format %q for type %q", format, vizType)
}

func wrapRender(err error, what string) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrCodeRender, err, "render %s", what)
}

// readScene decodes the request body as a scene document. On failure it
// writes the error response and returns false.
func (s *sceneServer) readScene(w http.ResponseWriter, r *http.Request) (*graph.Scene, bool) {
	scene, err := io.ReadJSON(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidScene, err, "invalid scene document"))
		return nil, false
	}
	return scene, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// writeError responds with the structured error as JSON.
func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":  string(apperrors.GetCode(err)),
		"error": apperrors.UserMessage(err),
	})
}
