// Package stationfs manages the on-disk rail dataset, optionally syncing it
// from an S3 bucket.
package stationfs

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"sprawl/pkg/sharedTypes"
)

// DataDir is where dataset csv files live locally.
var DataDir = "assets/data"

// StationsFile and JoinFile are the two csv files the viewer needs.
const (
	StationsFile = "stations.csv"
	JoinFile     = "join.csv"
)

// SyncDataset downloads every csv object of the dataset into DataDir and
// returns the local paths. Credentials and region come from the environment,
// same as the rest of the app's configuration.
func SyncDataset(dataset sharedTypes.Dataset) ([]string, error) {
	bucket, prefix := dataset.Bucket, dataset.Folder
	log.Printf("SyncDataset called | dataset=%s | bucket=%s | prefix=%s", dataset.Title, bucket, prefix)

	// Load credentials and region from environment variables
	region := os.Getenv("AWS_DEFAULT_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if region == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("missing one or more required environment variables: AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")
	}

	// Initialise AWS session
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, err
	}

	s3Client := s3.New(sess)

	// Ensure target directory exists
	if err := os.MkdirAll(DataDir, os.ModePerm); err != nil {
		return nil, err
	}

	listInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	var filePaths []string

	err = s3Client.ListObjectsV2Pages(listInput, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}

			// Skip "directory" keys and anything that isn't a csv
			if strings.HasSuffix(*obj.Key, "/") || !strings.HasSuffix(*obj.Key, ".csv") {
				continue
			}

			localPath, err := downloadObject(s3Client, bucket, *obj.Key)
			if err != nil {
				log.Printf("failed to download %s: %v", *obj.Key, err)
				continue // skip this file but keep processing others
			}

			filePaths = append(filePaths, localPath)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	log.Printf("SyncDataset completed | downloaded=%d file(s)", len(filePaths))
	return filePaths, nil
}

func downloadObject(s3Client *s3.S3, bucket, key string) (string, error) {
	result, err := s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", err
	}
	defer result.Body.Close()

	localPath := filepath.Join(DataDir, filepath.Base(key))
	outFile, err := os.Create(localPath)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(outFile, result.Body)
	outFile.Close()
	if err != nil {
		return "", err
	}

	return localPath, nil
}

// AvailableDataFiles lists the csv files already present in DataDir.
func AvailableDataFiles() ([]string, error) {
	entries, err := os.ReadDir(DataDir)
	if err != nil {
		log.Printf("Error reading %s directory: %v", DataDir, err)
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".csv") {
			files = append(files, filepath.Join(DataDir, entry.Name()))
		}
	}

	log.Printf("AvailableDataFiles completed | found=%d file(s)", len(files))
	return files, nil
}

// HasDataset reports whether both required csv files are present locally.
func HasDataset() bool {
	for _, name := range []string{StationsFile, JoinFile} {
		if _, err := os.Stat(filepath.Join(DataDir, name)); err != nil {
			return false
		}
	}
	return true
}
