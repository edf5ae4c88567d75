// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package invite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jcodagnone/invitemap/utils/httputils"
	"github.com/xuri/excelize/v2"
)

// maxBodySize caps how much of a fetched invite list is read.
const maxBodySize = 16 << 20

// SourceOptions configures how an invite list is read.
type SourceOptions struct {
	// Sheet is the spreadsheet tab to read; the first one when empty.
	Sheet string

	// UserAgent is the User-Agent header to use in HTTP requests
	UserAgent string

	// Enables light tracing of HTTP requests and responses
	EnableHTTPTrace bool

	// Client overrides the HTTP client built from the options above.
	Client *http.Client

	// Progress, if set, is called while spreadsheet rows are read.
	Progress func(done, total int)
}

// NewHTTPClient builds the client used to fetch remote invite lists.
func NewHTTPClient(options *SourceOptions) *http.Client {
	if options == nil {
		options = &SourceOptions{}
	}

	var httpLogWriter io.Writer
	if options.EnableHTTPTrace {
		httpLogWriter = os.Stderr
	}

	transport := &http.Transport{
		MaxIdleConns:          2,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}

	loggingTransport := &httputils.LoggingRoundTripper{
		Writer:    httpLogWriter,
		Transport: transport,
	}

	userAgent := "invitemap/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	headerTransport := &httputils.AppendRequestHeadersRoundTripper{
		Headers: map[string]string{
			"User-Agent": userAgent,
			"Accept":     "application/json",
		},
		Transport: loggingTransport,
	}

	return &http.Client{
		Timeout:   60 * time.Second,
		Transport: headerTransport,
	}
}

func unavailable(message string, err error) error {
	return NewError(ErrorTypeDataSourceUnavailable, message, err)
}

func decodeRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing invite list: %w", err)
	}

	return records, nil
}

// LoadFile reads a JSON array of records from path.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, unavailable("reading invite list", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, unavailable(path, err)
	}

	return records, nil
}

// WriteFile stores records as an indented JSON array.
func WriteFile(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling invite list: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing invite list: %w", err)
	}

	return nil
}

// Fetch downloads a JSON array of records with a single GET.
func Fetch(ctx context.Context, client *http.Client, url string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, unavailable("building request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, unavailable("fetching invite list", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, unavailable(fmt.Sprintf("fetching invite list: HTTP %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, unavailable("reading response body", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, unavailable(url, err)
	}

	return records, nil
}

// LoadXLSX reads records from a spreadsheet. The first row is the header and
// must have Name and Location columns, in any order and case.
func LoadXLSX(path string, options *SourceOptions) ([]Record, error) {
	if options == nil {
		options = &SourceOptions{}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, unavailable("opening spreadsheet", err)
	}
	defer f.Close()

	sheet := options.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, unavailable(path+": spreadsheet has no sheets", nil)
		}

		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, unavailable("reading sheet "+sheet, err)
	}

	if len(rows) == 0 {
		return nil, unavailable(fmt.Sprintf("%s: sheet %s is empty", path, sheet), nil)
	}

	nameCol, locationCol := -1, -1

	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "name":
			nameCol = i
		case "location":
			locationCol = i
		}
	}

	if nameCol < 0 || locationCol < 0 {
		return nil, unavailable(fmt.Sprintf("%s: sheet %s needs Name and Location columns", path, sheet), nil)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}

		return ""
	}

	total := len(rows) - 1
	records := make([]Record, 0, total)

	for i, row := range rows[1:] {
		if options.Progress != nil {
			options.Progress(i+1, total)
		}

		name, location := cell(row, nameCol), cell(row, locationCol)
		if name == "" && location == "" {
			continue
		}

		records = append(records, Record{Name: name, Location: location})
	}

	return records, nil
}

// Load reads records from a URL, a spreadsheet or a JSON file depending on
// source.
func Load(ctx context.Context, source string, options *SourceOptions) ([]Record, error) {
	if options == nil {
		options = &SourceOptions{}
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := options.Client
		if client == nil {
			client = NewHTTPClient(options)
		}

		return Fetch(ctx, client, source)
	}

	if strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return LoadXLSX(source, options)
	}

	return LoadFile(source)
}

// LoadOrEmpty is Load for callers that must keep going: a failure is logged
// and an empty list returned.
func LoadOrEmpty(ctx context.Context, source string, options *SourceOptions) []Record {
	records, err := Load(ctx, source, options)
	if err != nil {
		log.Printf("⚠️  invite list unavailable, continuing with none: %v", err)

		return []Record{}
	}

	return records
}
