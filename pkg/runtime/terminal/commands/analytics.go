package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/factory-atlas/pkg/adapters"
	"github.com/de-tools/factory-atlas/pkg/runtime/backend"
	"github.com/de-tools/factory-atlas/pkg/services/config"
	"github.com/de-tools/factory-atlas/pkg/services/period"
	"github.com/spf13/cobra"
)

func NewEfficiencyCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "efficiency",
		Short: "Show production, capacity, cost and lead-time KPIs for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asOf, err := env.asOf()
			if err != nil {
				return err
			}
			return env.session(cmd, func(ctx context.Context, _ *config.Config, b *backend.Backend) error {
				p := period.Resolve(asOf)
				m, err := b.Service.AnalyzeEfficiency(ctx, p)
				if err != nil {
					return err
				}
				return env.render(
					adapters.MapEfficiencyMetricsToReport(p, m),
					adapters.MapEfficiencyMetricsDomainToApi(m),
				)
			})
		},
	}
}

func NewBottlenecksCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "bottlenecks",
		Short: "List slow stages, problematic products and slow suppliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asOf, err := env.asOf()
			if err != nil {
				return err
			}
			return env.session(cmd, func(ctx context.Context, _ *config.Config, b *backend.Backend) error {
				p := period.Resolve(asOf)
				analysis, err := b.Service.DetectBottlenecks(ctx, p)
				if err != nil {
					return err
				}
				return env.render(
					adapters.MapBottleneckAnalysisToReport(p, analysis),
					adapters.MapBottleneckAnalysisDomainToApi(analysis),
				)
			})
		},
	}
}

func NewRecommendationsCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "recommendations",
		Short: "Generate prioritised recommendations for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asOf, err := env.asOf()
			if err != nil {
				return err
			}
			return env.session(cmd, func(ctx context.Context, _ *config.Config, b *backend.Backend) error {
				report, err := b.Service.BuildReport(ctx, asOf)
				if err != nil {
					return err
				}
				return env.render(
					adapters.MapRecommendationReportToReport(report.Period, report.Recommendations),
					adapters.MapRecommendationReportDomainToApi(report.Recommendations),
				)
			})
		},
	}
}

func NewReportCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline and print the operations report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asOf, err := env.asOf()
			if err != nil {
				return err
			}
			return env.session(cmd, func(ctx context.Context, _ *config.Config, b *backend.Backend) error {
				report, err := b.Service.BuildReport(ctx, asOf)
				if err != nil {
					return fmt.Errorf("failed to build report: %w", err)
				}
				return env.render(
					adapters.MapOperationsReportToReport(report),
					adapters.MapOperationsReportDomainToApi(report),
				)
			})
		},
	}
}
