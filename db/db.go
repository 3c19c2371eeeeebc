package db

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/chordlens/model"
)

// DynamoDB caps BatchGetItem at 100 keys.
const MaxBatch = 100

// maxAttempts bounds how often keys DynamoDB left unprocessed are retried.
const maxAttempts = 4

var (
	ErrTooManyKeys = errors.New("too many filenames in one batch")
	ErrUnprocessed = errors.New("DynamoDB left keys unprocessed")
)

var retryDelay = 50 * time.Millisecond

// MetadataStore looks up song metadata keyed by MIDI filename.
type MetadataStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

type Config struct {
	Table    string
	Region   string
	Endpoint string
}

func NewMetadataStore(cfg Config) (*MetadataStore, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}
	return NewMetadataStoreWithClient(dynamodb.New(sess), cfg.Table), nil
}

func NewMetadataStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *MetadataStore {
	return &MetadataStore{client: client, table: table}
}

// GetMidiMetadatas returns metadata for whichever filenames the table knows.
// Unprocessed keys are retried with a growing delay. On error the records
// fetched so far are still returned.
func (m *MetadataStore) GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	if len(filenames) > MaxBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(filenames), MaxBatch)
	}

	res := make(map[string]model.MidiMetadata)
	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	requests := map[string]*dynamodb.KeysAndAttributes{m.table: {Keys: keys}}
	for attempt := 1; ; attempt++ {
		out, err := m.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: requests})
		if err != nil {
			return res, fmt.Errorf("error from DynamoDB: %w", err)
		}
		for _, item := range out.Responses[m.table] {
			pk, meta := parseItem(item)
			if pk != "" {
				res[pk] = meta
			}
		}

		left := out.UnprocessedKeys[m.table]
		if left == nil || len(left.Keys) == 0 {
			return res, nil
		}
		if attempt == maxAttempts {
			return res, fmt.Errorf("%w: %d after %d attempts", ErrUnprocessed, len(left.Keys), attempt)
		}
		time.Sleep(retryDelay * time.Duration(attempt))
		requests = map[string]*dynamodb.KeysAndAttributes{m.table: left}
	}
}

func parseItem(v map[string]*dynamodb.AttributeValue) (string, model.MidiMetadata) {
	var s model.MidiMetadata
	if attr, ok := v["Year"]; ok && attr.N != nil {
		year, _ := strconv.ParseUint(*attr.N, 10, 32)
		s.Year = uint(year)
	}
	s.Artist = stringAttr(v, "Artist")
	s.Release = stringAttr(v, "Release")
	s.Title = stringAttr(v, "Title")
	return stringAttr(v, "PK"), s
}

func stringAttr(v map[string]*dynamodb.AttributeValue, name string) string {
	if attr, ok := v[name]; ok && attr.S != nil {
		return *attr.S
	}
	return ""
}
