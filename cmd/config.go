package cmd

import "time"

// Config carries the runtime settings of the integration hub. Values come
// from the environment, loaded in main.
type Config struct {
	HTTPPort       string
	CMSURL         string
	ROSBaseURL     string
	WMSAddr        string
	RabbitMQURL    string
	BackendTimeout time.Duration
}
