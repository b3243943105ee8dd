package env

const DefaultHttpPort = "9050"

type NetEnvironment struct {
	HttpHost string `validate:"omitempty,hostname_rfc1123|ip"`
	HttpPort string `validate:"required,numeric,max=5"`
}

func (e NetEnvironment) GetHttpPort() string {
	return e.HttpPort
}

func (e NetEnvironment) GetHttpHost() string {
	return e.HttpHost
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}
