// Package metrics - metrics/metrics.go
// file: metrics/metrics.go

package metrics

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"ycfl-league/logger"
	"ycfl-league/models"
)

// Publisher ships league gauges somewhere.
type Publisher interface {
	PublishSummary(summary models.LeagueSummary)
}

// Noop drops every metric. It is the default when METRICS_ENABLED is off.
type Noop struct{}

func (Noop) PublishSummary(models.LeagueSummary) {}

// CloudWatch publishes gauges with PutMetricData.
type CloudWatch struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	env       string
	now       func() time.Time
}

// NewCloudWatch builds a publisher from the default AWS credential chain.
func NewCloudWatch(namespace, env string) (*CloudWatch, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return NewCloudWatchWithClient(cloudwatch.New(sess), namespace, env), nil
}

// NewCloudWatchWithClient is NewCloudWatch with an injected client.
func NewCloudWatchWithClient(client cloudwatchiface.CloudWatchAPI, namespace, env string) *CloudWatch {
	return &CloudWatch{client: client, namespace: namespace, env: env, now: time.Now}
}

// PublishSummary pushes one datum per league count in a single call.
func (cw *CloudWatch) PublishSummary(s models.LeagueSummary) {
	ts := aws.Time(cw.now())
	gauges := []struct {
		name  string
		value int
	}{
		{"PendingRegistrations", s.Pending},
		{"ApprovedPlayers", s.Approved},
		{"RejectedPlayers", s.Rejected},
		{"FeaturedPlayers", s.Featured},
		{"AssignedPlayers", s.AssignedPlayers},
		{"GalleryImages", s.GalleryImages},
	}

	data := make([]*cloudwatch.MetricDatum, 0, len(gauges))
	for _, g := range gauges {
		data = append(data, &cloudwatch.MetricDatum{
			MetricName: aws.String(g.name),
			Dimensions: []*cloudwatch.Dimension{
				{
					Name:  aws.String("Environment"),
					Value: aws.String(cw.env),
				},
			},
			Timestamp: ts,
			Value:     aws.Float64(float64(g.value)),
			Unit:      aws.String(cloudwatch.StandardUnitCount),
		})
	}

	_, err := cw.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(cw.namespace),
		MetricData: data,
	})
	if err != nil {
		logger.Error.Printf("[PublishSummary] CloudWatch metric failed: %v", err)
		return
	}
	logger.Debug.Printf("[PublishSummary] published %d gauges to %s", len(data), cw.namespace)
}
