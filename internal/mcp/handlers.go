package mcp

import (
	"github.com/rs/zerolog/log"

	"relia-mcp/internal/dataset"
)

func (s *Server) handleImportDataset(args map[string]interface{}) (interface{}, error) {
	raw := asString(args["records"])
	ds := dataset.Parse(raw)
	ds.Name = asString(args["name"])

	if ds.Size() == 0 {
		log.Warn().Int("dropped", ds.Dropped).Msg("Import produced an empty dataset")
	}

	ds, err := s.datasets.Put(ds)
	if err != nil {
		log.Warn().Err(err).Str("id", ds.ID).Msg("Failed to persist dataset, keeping it in memory")
	}

	log.Info().Str("id", ds.ID).Int("records", ds.Size()).Int("dropped", ds.Dropped).Msg("Dataset imported")
	return ds.Summarize(), nil
}

func (s *Server) handleListDatasets() (interface{}, error) {
	return map[string]interface{}{
		"datasets": s.datasets.List(),
	}, nil
}
