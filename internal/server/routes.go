// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/netscope-ml/netscope/internal/analyzer"
	"github.com/netscope-ml/netscope/internal/arch"
	"github.com/netscope-ml/netscope/internal/metrics"
	"github.com/netscope-ml/netscope/internal/render"
)

// stateResponse is the common mutation response: a message plus the
// recomputed layer details and summary.
type stateResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Layers  []analyzer.Record `json:"layers"`
	Summary analyzer.Summary  `json:"summary"`
}

func state(message string, a *analyzer.Analyzer) stateResponse {
	return stateResponse{
		Status:  "success",
		Message: message,
		Layers:  a.LayerDetails(),
		Summary: a.Summary(),
	}
}

func (s *Server) createSession(*http.Request) (any, int, error) {
	id := s.sessions.Create()
	return map[string]string{"status": "success", "session_id": id}, http.StatusCreated, nil
}

func (s *Server) getAnalysis(r *http.Request) (any, int, error) {
	var resp map[string]any
	err := s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		resp = map[string]any{
			"layers":      a.LayerDetails(),
			"summary":     a.Summary(),
			"input_shape": a.InputShape(),
		}
		return nil
	})
	return resp, http.StatusOK, err
}

func (s *Server) setInputShape(r *http.Request) (any, int, error) {
	var req struct {
		Height   int `json:"height"`
		Width    int `json:"width"`
		Channels int `json:"channels"`
	}
	if err := readJSON(r, &req); err != nil {
		return nil, 0, err
	}

	var resp stateResponse
	err := s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		a.SetInputShape(req.Height, req.Width, req.Channels)
		resp = state(fmt.Sprintf("Input shape set to %dx%dx%d", req.Height, req.Width, req.Channels), a)
		return nil
	})
	metrics.Observer.LayerOp("reshape")
	return resp, http.StatusOK, err
}

func (s *Server) addLayer(r *http.Request) (any, int, error) {
	cfg := map[string]any{}
	if err := readJSON(r, &cfg); err != nil {
		return nil, 0, err
	}
	tag, _ := cfg["type"].(string)
	if tag == "" {
		return nil, 0, badRequest("missing layer type")
	}
	delete(cfg, "type")

	layer, err := arch.New(tag, cfg)
	if err != nil {
		return nil, 0, err
	}

	var resp stateResponse
	err = s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		a.AddLayer(layer)
		resp = state(fmt.Sprintf("%s layer added", layer.Kind()), a)
		return nil
	})
	metrics.Observer.LayerOp("add")
	return resp, http.StatusOK, err
}

func (s *Server) removeLayer(r *http.Request) (any, int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return nil, 0, badRequest("invalid layer index %q", r.PathValue("index"))
	}

	// Out-of-range removal stays a silent no-op, matching the core.
	var resp stateResponse
	err = s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		a.RemoveLayer(index)
		resp = state("Layer removed", a)
		return nil
	})
	metrics.Observer.LayerOp("remove")
	return resp, http.StatusOK, err
}

func (s *Server) clearLayers(r *http.Request) (any, int, error) {
	var resp stateResponse
	err := s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		a.ClearLayers()
		resp = state("All layers cleared", a)
		return nil
	})
	metrics.Observer.LayerOp("clear")
	return resp, http.StatusOK, err
}

func (s *Server) exportArchitecture(r *http.Request) (any, int, error) {
	var resp map[string]any
	err := s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		resp = map[string]any{
			"status":       "success",
			"architecture": a.Export(),
		}
		return nil
	})
	return resp, http.StatusOK, err
}

func (s *Server) generateDiagram(r *http.Request) (any, int, error) {
	var resp map[string]any
	err := s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		details := a.LayerDetails()
		if len(details) == 0 {
			return badRequest("no layers added to the network")
		}
		summary := a.Summary()
		resp = map[string]any{
			"status":  "success",
			"svg":     render.Diagram(details, summary),
			"table":   render.Table(details, summary),
			"summary": summary,
		}
		return nil
	})
	return resp, http.StatusOK, err
}

func (s *Server) configureProblem(r *http.Request) (any, int, error) {
	var req struct {
		ProblemType      string `json:"problem_type"`
		NumClasses       int    `json:"num_classes"`
		OutputActivation string `json:"output_activation"`
	}
	if err := readJSON(r, &req); err != nil {
		return nil, 0, err
	}
	if req.OutputActivation == "" {
		req.OutputActivation = "softmax"
	}

	var output arch.Layer
	switch req.ProblemType {
	case "classification":
		if req.NumClasses == 0 {
			return nil, 0, badRequest("classification requires num_classes")
		}
		output = arch.NewDense(req.NumClasses, req.OutputActivation, true,
			fmt.Sprintf("Classification_Output_%d", req.NumClasses))
	case "regression":
		units := req.NumClasses
		if units == 0 {
			units = 1
		}
		output = arch.NewDense(units, "linear", true,
			fmt.Sprintf("Regression_Output_%d", units))
	case "binary_classification":
		output = arch.NewDense(1, "sigmoid", true, "Binary_Classification_Output")
	default:
		return nil, 0, badRequest("unknown problem type %q", req.ProblemType)
	}

	var resp stateResponse
	err := s.sessions.Do(sessionID(r), func(a *analyzer.Analyzer) error {
		a.AddLayer(output)
		resp = state(fmt.Sprintf("Configured for %s", req.ProblemType), a)
		return nil
	})
	metrics.Observer.LayerOp("add")
	return resp, http.StatusOK, err
}

// layerTypes is the static catalog of constructible layer kinds.
func (s *Server) layerTypes(*http.Request) (any, int, error) {
	return map[string]any{
		"conv2d": kindInfo{"Convolutional 2D", "Feature Extraction",
			[]string{"filters", "kernel_size"}, []string{"stride", "padding", "activation", "name"}},
		"maxpool2d": kindInfo{"Max Pooling 2D", "Feature Extraction",
			[]string{"pool_size"}, []string{"stride", "padding", "name"}},
		"avgpool2d": kindInfo{"Average Pooling 2D", "Feature Extraction",
			[]string{"pool_size"}, []string{"stride", "padding", "name"}},
		"batchnorm": kindInfo{"Batch Normalization", "Regularization",
			nil, []string{"name"}},
		"dropout": kindInfo{"Dropout", "Regularization",
			nil, []string{"rate", "name"}},
		"globalavgpool2d": kindInfo{"Global Average Pooling 2D", "Feature Extraction",
			nil, []string{"name"}},
		"flatten": kindInfo{"Flatten", "Transition",
			nil, []string{"name"}},
		"dense": kindInfo{"Dense/Linear", "Output",
			[]string{"units"}, []string{"activation", "use_bias", "name"}},
		"activation": kindInfo{"Activation", "Activation",
			nil, []string{"activation", "name"}},
	}, http.StatusOK, nil
}

type kindInfo struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

func (s *Server) problemTypes(*http.Request) (any, int, error) {
	type problem struct {
		Name              string `json:"name"`
		Description       string `json:"description"`
		RequiresClasses   bool   `json:"requires_classes"`
		DefaultActivation string `json:"default_activation"`
	}
	return map[string]problem{
		"classification": {
			Name:              "Multi-class Classification",
			Description:       "Classify input into one of multiple classes",
			RequiresClasses:   true,
			DefaultActivation: "softmax",
		},
		"binary_classification": {
			Name:              "Binary Classification",
			Description:       "Classify input into one of two classes",
			DefaultActivation: "sigmoid",
		},
		"regression": {
			Name:              "Regression",
			Description:       "Predict continuous numerical values",
			DefaultActivation: "linear",
		},
	}, http.StatusOK, nil
}
