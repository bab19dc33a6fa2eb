package utils

import (
	"log"
	"time"

	"shikkha/config"

	"github.com/go-resty/resty/v2"
)

// RevalidatePath asks the frontend to regenerate the cached page at the
// given path. Called after every mutating action; the response is
// intentionally ignored.
func RevalidatePath(path string) {
	if !config.AppConfig.RevalidateEnabled {
		return
	}

	go func() {
		client := resty.New().SetTimeout(5 * time.Second)

		_, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{
				"path":   path,
				"secret": config.AppConfig.RevalidateSecret,
			}).
			Post(config.AppConfig.FrontendBaseURL + "/api/revalidate")

		if err != nil {
			log.Printf("[REVALIDATE] Failed to revalidate %s: %v", path, err)
		}
	}()
}
