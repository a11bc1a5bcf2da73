// Package testutil provides test data generators.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// TestDataGenerator provides methods for generating test data.
type TestDataGenerator struct {
	rand *rand.Rand
}

// NewTestDataGenerator creates a new test data generator with a seeded random source.
func NewTestDataGenerator(seed int64) *TestDataGenerator {
	return &TestDataGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// GenerateObjectList generates a list of test S3 objects.
func (g *TestDataGenerator) GenerateObjectList(count int, prefix string) []types.Object {
	objects := make([]types.Object, count)
	baseTime := time.Now().Add(-24 * time.Hour)

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("%sobject-%04d.txt", prefix, i)
		size := int64(g.rand.Intn(1000000) + 1000) // 1KB to 1MB
		modified := baseTime.Add(time.Duration(i) * time.Minute)
		objects[i] = CreateTestObject(key, size, modified)
	}

	return objects
}

// GenerateObjectVersions generates object versions for a single key, newest last.
func (g *TestDataGenerator) GenerateObjectVersions(key string, count int) []types.ObjectVersion {
	versions := make([]types.ObjectVersion, count)
	baseTime := time.Now().Add(-24 * time.Hour)

	for i := 0; i < count; i++ {
		versionID := fmt.Sprintf("version-%d", g.rand.Int63())
		modified := baseTime.Add(time.Duration(i) * time.Hour)
		versions[i] = CreateTestObjectVersion(key, versionID, int64(g.rand.Intn(100000)+100), modified)
		versions[i].IsLatest = BoolPtr(i == count-1)
	}

	return versions
}

// GenerateDeleteMarkers generates delete markers for versioned buckets.
func (g *TestDataGenerator) GenerateDeleteMarkers(count int) []types.DeleteMarkerEntry {
	markers := make([]types.DeleteMarkerEntry, count)
	baseTime := time.Now().Add(-24 * time.Hour)

	for i := 0; i < count; i++ {
		markers[i] = types.DeleteMarkerEntry{
			Key:          StringPtr(fmt.Sprintf("deleted-object-%04d", i)),
			VersionId:    StringPtr(fmt.Sprintf("version-%d", g.rand.Int63())),
			IsLatest:     BoolPtr(i == count-1),
			LastModified: TimePtr(baseTime.Add(time.Duration(i) * time.Hour)),
		}
	}

	return markers
}

// GenerateObjectMetadata generates test object metadata.
func (g *TestDataGenerator) GenerateObjectMetadata(size int64) map[string]string {
	return map[string]string{
		"test-key-1": fmt.Sprintf("test-value-%d", g.rand.Intn(100)),
		"test-key-2": fmt.Sprintf("test-value-%d", g.rand.Intn(100)),
		"size":       fmt.Sprintf("%d", size),
	}
}
