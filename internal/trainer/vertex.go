package trainer

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"

	"github.com/trendcraft/trendcraft-server/internal/config"
)

// VertexJobSubmitter creates custom training jobs on the managed training
// service.
type VertexJobSubmitter struct {
	client *aiplatform.JobClient
	cfg    *config.Config
}

func NewVertexJobSubmitter(ctx context.Context, cfg *config.Config) (*VertexJobSubmitter, error) {
	endpoint := fmt.Sprintf("%s-aiplatform.googleapis.com:443", cfg.GCPLocation)
	client, err := aiplatform.NewJobClient(ctx,
		option.WithEndpoint(endpoint),
		option.WithCredentialsFile(cfg.GoogleCredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create job client: %w", err)
	}

	return &VertexJobSubmitter{client: client, cfg: cfg}, nil
}

// Submit creates one custom job and returns its resource name. No
// acknowledgment wait beyond the create call, no completion monitoring.
func (v *VertexJobSubmitter) Submit(ctx context.Context) (string, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", v.cfg.GCPProject, v.cfg.GCPLocation)

	req := &aiplatformpb.CreateCustomJobRequest{
		Parent: parent,
		CustomJob: &aiplatformpb.CustomJob{
			DisplayName: "trendcraft-training-job",
			JobSpec: &aiplatformpb.CustomJobSpec{
				WorkerPoolSpecs: []*aiplatformpb.WorkerPoolSpec{
					{
						ReplicaCount: 1,
						MachineSpec: &aiplatformpb.MachineSpec{
							MachineType: v.cfg.TrainingMachineType,
						},
						Task: &aiplatformpb.WorkerPoolSpec_ContainerSpec{
							ContainerSpec: &aiplatformpb.ContainerSpec{
								ImageUri: v.cfg.TrainingImageURI,
								Command:  v.cfg.TrainingCommand,
								Args:     v.cfg.TrainingArgs,
							},
						},
					},
				},
				BaseOutputDirectory: &aiplatformpb.GcsDestination{
					OutputUriPrefix: v.cfg.TrainingOutputDir,
				},
			},
		},
	}

	job, err := v.client.CreateCustomJob(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create custom job: %w", err)
	}

	return job.GetName(), nil
}

func (v *VertexJobSubmitter) Close() error {
	return v.client.Close()
}
