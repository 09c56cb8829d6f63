package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/Hakuto4838/DataStructures.git/datastream"
)

// options 由 flag 填入預設值，-config 檔案中出現的欄位會覆蓋之
type options struct {
	File     string                    `json:"file"`
	Dir      string                    `json:"dir"`
	Out      string                    `json:"out"`
	Impl     string                    `json:"impl"`
	Runs     int                       `json:"runs"`
	Seed     int64                     `json:"seed"`
	Workload datastream.WorkloadParams `json:"workload"`
}

// loadConfig 讀取 JSONC 設定檔（允許註解與尾逗號）並合併到 opts
func loadConfig(fs afero.Fs, path string, opts *options) error {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(jsonc.ToJSON(b), opts); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

func (o *options) validate() error {
	if o.Runs <= 0 {
		return errors.Errorf("invalid runs: %d", o.Runs)
	}
	if o.Dir == "" && o.File == "" && o.Out == "" {
		return errors.New("either file, dir, or out with workload params must be provided")
	}
	return nil
}
