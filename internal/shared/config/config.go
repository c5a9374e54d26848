package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"gx_client/internal/shared/types"
)

// defaultIni 是编译进程序的默认配置，客户端不读取任何外部配置文件。
const defaultIni = `
[client]
host        = localhost
port        = 9090
message     = "Hello, Server :DDDD!"
buffer_size = 1024

[log]
level = info
`

// Default 从内置的 ini 内容构建配置。
func Default() (*types.Config, error) {
	cfg := new(types.Config)
	if err := LoadIni(cfg, []byte(defaultIni)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadIni maps one or more ini sources onto cfg. Later sources override
// earlier ones; each source is anything ini.Load accepts (file name, []byte,
// io.Reader). A value that does not convert to its field type is an error.
func LoadIni(cfg *types.Config, source interface{}, others ...interface{}) error {
	iniFile, err := ini.Load(source, others...)
	if err != nil {
		return fmt.Errorf("failed to parse ini content: %w", err)
	}
	if err := iniFile.StrictMapTo(cfg); err != nil {
		return fmt.Errorf("failed to map ini content to config struct: %w", err)
	}
	return nil
}
