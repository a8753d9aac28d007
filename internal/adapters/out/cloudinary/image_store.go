// Package cloudinary implements the image store against the Cloudinary
// upload API. Shipment photos are uploaded under a configurable folder and
// referenced by their secure URL.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"freightbid/internal/pkg/errs"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// ImageStore uploads and deletes images via the Cloudinary REST API.
type ImageStore struct {
	httpClient *http.Client
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	now        func() time.Time
}

// NewImageStore creates a store for the given Cloudinary account. folder
// namespaces the uploads; pass the service name.
func NewImageStore(cloudName, apiKey, apiSecret, folder string) *ImageStore {
	return &ImageStore{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
		now:        time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Upload sends the image content as a signed multipart request and returns
// the secure URL of the stored image.
func (s *ImageStore) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	params := map[string]string{
		"folder":    s.folder,
		"timestamp": strconv.FormatInt(s.now().Unix(), 10),
	}
	params["signature"] = s.sign(params)
	params["api_key"] = s.apiKey

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return "", errs.NewStorageError("upload", err)
		}
	}
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", errs.NewStorageError("upload", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", errs.NewStorageError("upload", err)
	}
	if err := writer.Close(); err != nil {
		return "", errs.NewStorageError("upload", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", s.baseURL, s.cloudName)
	var result uploadResponse
	if err := s.post(ctx, endpoint, writer.FormDataContentType(), strings.NewReader(body.String()), &result); err != nil {
		return "", errs.NewStorageError("upload", err)
	}
	if result.SecureURL == "" {
		return "", errs.NewStorageError("upload", fmt.Errorf("no secure url in response"))
	}

	return result.SecureURL, nil
}

// Delete removes an image by its secure URL. Cloudinary identifies images
// by public id, which is recovered from the URL path.
func (s *ImageStore) Delete(ctx context.Context, url string) error {
	params := map[string]string{
		"public_id": publicIDFromURL(url),
		"timestamp": strconv.FormatInt(s.now().Unix(), 10),
	}
	params["signature"] = s.sign(params)
	params["api_key"] = s.apiKey

	form := make([]string, 0, len(params))
	for key, value := range params {
		form = append(form, key+"="+value)
	}

	endpoint := fmt.Sprintf("%s/%s/image/destroy", s.baseURL, s.cloudName)
	var result destroyResponse
	err := s.post(ctx, endpoint, "application/x-www-form-urlencoded",
		strings.NewReader(strings.Join(form, "&")), &result)
	if err != nil {
		return errs.NewStorageError("delete", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return errs.NewStorageError("delete", fmt.Errorf("unexpected result %q", result.Result))
	}

	return nil
}

func (s *ImageStore) post(ctx context.Context, endpoint, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("cloudinary returned %d: %s", resp.StatusCode, string(payload))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// sign produces the request signature: the sorted key=value pairs joined
// with '&', concatenated with the API secret, hashed with SHA-1.
func (s *ImageStore) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))
	return hex.EncodeToString(digest[:])
}

// publicIDFromURL extracts "folder/name" from a Cloudinary delivery URL of
// the form https://res.cloudinary.com/<cloud>/image/upload/v123/folder/name.ext.
func publicIDFromURL(url string) string {
	const marker = "/upload/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return url
	}

	rest := url[idx+len(marker):]
	if slash := strings.IndexByte(rest, '/'); slash >= 0 && strings.HasPrefix(rest, "v") {
		if _, err := strconv.Atoi(rest[1:slash]); err == nil {
			rest = rest[slash+1:]
		}
	}

	ext := path.Ext(rest)
	return strings.TrimSuffix(rest, ext)
}
