package settings

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"
)

var avatarClient = &http.Client{Timeout: 10 * time.Second}

// fetchImageDataURI downloads an image and encodes it as the data URI
// format the Discord user update endpoint expects.
func fetchImageDataURI(url string) (string, error) {
	resp, err := avatarClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching image: %s", resp.Status)
	}

	// Discord caps avatar uploads well below this; refuse anything larger
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read image body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body)), nil
}
