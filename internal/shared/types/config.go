package types

// ClientConf 包含客户端一次请求/响应所需的全部参数
type ClientConf struct {
	Host       string `ini:"host"`
	Port       int    `ini:"port"`
	Message    string `ini:"message"`
	BufferSize int    `ini:"buffer_size"` // 单次读取的缓冲区大小 (字节)
}

// Endpoint 返回由 Host 和 Port 组成的远端地址
func (c ClientConf) Endpoint() Endpoint {
	return Endpoint{Host: c.Host, Port: c.Port}
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是客户端的统一配置结构体
type Config struct {
	ClientConf `ini:"client"`
	LogConf    `ini:"log"`
}
