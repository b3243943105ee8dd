package env

// Undefined is what an unset variable renders as in the generated environment file.
const Undefined = "undefined"

const ApiBaseURLKey = "API_BASE_URL"
const AppNameKey = "APP_NAME"
const AwsPubKeyKey = "AWSAPIKEY"
const NodeEnvKey = "NODE_ENV"
const ProductionKey = "PRODUCTION"

// FrontendEnvironment is the set of values compiled into the Angular bundle.
// Values are never validated; missing ones become Undefined.
type FrontendEnvironment struct {
	ApiBaseURL string
	AppName    string
	AwsPubKey  string
	NodeEnv    string
	Production string
}

func NewFrontendEnvironment() FrontendEnvironment {
	return FrontendEnvironment{
		ApiBaseURL: LookupEnvVar(ApiBaseURLKey, Undefined),
		AppName:    LookupEnvVar(AppNameKey, Undefined),
		AwsPubKey:  LookupEnvVar(AwsPubKeyKey, Undefined),
		NodeEnv:    LookupEnvVar(NodeEnvKey, Undefined),
		Production: LookupEnvVar(ProductionKey, Undefined),
	}
}
