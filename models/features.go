package models

import "strconv"

// FeatureRecord is the fixed-schema feature vector computed for one URL.
// Records are derived once, never mutated, and appended as columns to the
// output table. The binary flags use the -1/1 encoding the downstream
// classifier was trained on: -1 means the signal fired, 1 means it did not.
type FeatureRecord struct {
	URLLength      int `json:"url_length" yaml:"url_length"`
	HostnameLength int `json:"hostname_length" yaml:"hostname_length"`
	PathLength     int `json:"path_length" yaml:"path_length"`
	FDLength       int `json:"fd_length" yaml:"fd_length"`

	CountDash     int `json:"count_-" yaml:"count_-"`
	CountAt       int `json:"count_@" yaml:"count_@"`
	CountQuestion int `json:"count_?" yaml:"count_?"`
	CountPercent  int `json:"count_%" yaml:"count_%"`
	CountDot      int `json:"count_." yaml:"count_."`
	CountEqual    int `json:"count_=" yaml:"count_="`
	CountHTTP     int `json:"count_http" yaml:"count_http"`
	CountHTTPS    int `json:"count_https" yaml:"count_https"`
	CountWWW      int `json:"count_www" yaml:"count_www"`

	CountDigits  int `json:"count_digits" yaml:"count_digits"`
	CountLetters int `json:"count_letters" yaml:"count_letters"`
	CountDir     int `json:"count_dir" yaml:"count_dir"`

	UseOfIP  int `json:"use_of_ip" yaml:"use_of_ip"`
	ShortURL int `json:"short_url" yaml:"short_url"`
}

// FeatureColumns is the stable output column order for FeatureRecord
// fields. The downstream model indexes columns by position, so this
// order is part of the output contract.
var FeatureColumns = []string{
	"url_length",
	"hostname_length",
	"path_length",
	"fd_length",
	"count_-",
	"count_@",
	"count_?",
	"count_%",
	"count_.",
	"count_=",
	"count_http",
	"count_https",
	"count_www",
	"count_digits",
	"count_letters",
	"count_dir",
	"use_of_ip",
	"short_url",
}

// Row renders the record as CSV cells in FeatureColumns order.
func (r FeatureRecord) Row() []string {
	vals := []int{
		r.URLLength,
		r.HostnameLength,
		r.PathLength,
		r.FDLength,
		r.CountDash,
		r.CountAt,
		r.CountQuestion,
		r.CountPercent,
		r.CountDot,
		r.CountEqual,
		r.CountHTTP,
		r.CountHTTPS,
		r.CountWWW,
		r.CountDigits,
		r.CountLetters,
		r.CountDir,
		r.UseOfIP,
		r.ShortURL,
	}
	row := make([]string, len(vals))
	for i, v := range vals {
		row[i] = strconv.Itoa(v)
	}
	return row
}
