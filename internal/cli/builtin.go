package cli

import (
	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/diagram/template"
	"github.com/archviz/archviz/pkg/geom"
	"github.com/archviz/archviz/pkg/pipeline"
)

// builtinJobs returns the built-in diagram set: one layered system
// architecture plus one data-flow diagram per role.
func builtinJobs() ([]pipeline.Job, error) {
	arch := architectureDiagram()

	jobs := []pipeline.Job{{Name: "system-architecture", Diagram: arch}}
	for _, flow := range roleFlows() {
		d, err := template.Expand(flow.spec)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, pipeline.Job{Name: flow.name, Diagram: d})
	}
	return jobs, nil
}

// architectureDiagram builds the layered system overview: six outlined
// layers with their components and the request/data paths between them.
func architectureDiagram() *diagram.Diagram {
	d := &diagram.Diagram{
		Title:    "System Architecture",
		Subtitle: "Layered overview: clients, identity, APIs, storage, and audit",
	}

	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.02, 0.80, 0.42, 0.18), Title: "Security Layer", Stroke: diagram.AccentGreen})
	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.46, 0.78, 0.22, 0.20), Title: "Client Layer", Stroke: diagram.AccentBlue})
	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.70, 0.78, 0.28, 0.20), Title: "Identity Layer", Stroke: diagram.AccentPurple})
	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.03, 0.47, 0.44, 0.28), Title: "API + Domain Layer", Stroke: diagram.AccentGreen})
	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.49, 0.43, 0.24, 0.32), Title: "Data Layer", Stroke: diagram.AccentBlue})
	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.75, 0.43, 0.23, 0.32), Title: "Audit + Incident Layer", Stroke: diagram.AccentPurple})

	// Security layer
	d.AddShape(box(0.05, 0.89, 0.11, 0.055, "Access Control"))
	d.AddShape(box(0.18, 0.89, 0.13, 0.055, "Ownership Checks"))
	d.AddShape(box(0.33, 0.89, 0.09, 0.055, "Rate Limits"))
	d.AddShape(box(0.05, 0.82, 0.17, 0.055, "Security Headers"))
	d.AddShape(box(0.24, 0.82, 0.18, 0.055, "Session Validation"))

	// Client layer
	d.AddShape(box(0.50, 0.90, 0.14, 0.055, "Web Browser"))
	d.AddShape(box(0.50, 0.83, 0.14, 0.055, "Web Application"))
	d.AddShape(box(0.50, 0.76, 0.14, 0.055, "Role Navigation"))

	// Identity layer
	d.AddShape(box(0.75, 0.90, 0.19, 0.055, "Identity Provider"))
	d.AddShape(box(0.75, 0.83, 0.19, 0.055, "Invite Verification"))
	d.AddShape(box(0.75, 0.76, 0.19, 0.055, "Access Policies"))

	// API + domain layer
	d.AddShape(box(0.06, 0.67, 0.18, 0.06, "Auth APIs"))
	d.AddShape(box(0.26, 0.67, 0.18, 0.06, "Account APIs"))
	d.AddShape(box(0.06, 0.59, 0.18, 0.06, "Record APIs"))
	d.AddShape(box(0.26, 0.59, 0.18, 0.06, "Workflow APIs"))
	d.AddShape(box(0.06, 0.51, 0.18, 0.06, "Export APIs"))
	d.AddShape(box(0.26, 0.51, 0.18, 0.06, "Incident APIs"))

	// Data layer
	d.AddShape(diagram.Shape{
		Kind: diagram.KindCylinder, Rect: geom.XYWH(0.53, 0.60, 0.16, 0.11),
		Label: "Document Store", Detail: "primary database",
	})
	d.AddShape(box(0.51, 0.53, 0.20, 0.05, "accounts, records,"))
	d.AddShape(box(0.51, 0.47, 0.20, 0.05, "workflows, exports,"))
	d.AddShape(box(0.51, 0.41, 0.20, 0.05, "incidents, audit events"))
	d.AddShape(diagram.Shape{
		Kind: diagram.KindCylinder, Rect: geom.XYWH(0.53, 0.28, 0.16, 0.11),
		Label: "Object Storage", Detail: "attachments bucket",
	})

	// Audit + incident layer
	d.AddShape(box(0.78, 0.66, 0.17, 0.06, "Audit Log Writer"))
	d.AddShape(box(0.78, 0.58, 0.17, 0.06, "Forensic Views"))
	d.AddShape(box(0.78, 0.50, 0.17, 0.06, "Detection Rules"))
	d.AddShape(box(0.78, 0.42, 0.17, 0.06, "Retry Queue"))
	d.AddShape(box(0.78, 0.34, 0.17, 0.06, "Incident Alerts"))

	// Request and data paths
	d.AddConnector(arrow(0.57, 0.90, 0.57, 0.885, 0))
	d.AddConnector(arrow(0.64, 0.855, 0.75, 0.92, 0.15))
	d.AddConnector(arrow(0.75, 0.85, 0.64, 0.83, -0.1))
	d.AddConnector(arrow(0.50, 0.80, 0.35, 0.72, -0.12))
	d.AddConnector(arrow(0.23, 0.82, 0.18, 0.73, 0.1))
	d.AddConnector(arrow(0.24, 0.70, 0.26, 0.70, 0))
	d.AddConnector(arrow(0.24, 0.62, 0.26, 0.62, 0))
	d.AddConnector(arrow(0.24, 0.54, 0.26, 0.54, 0))
	d.AddConnector(arrow(0.44, 0.62, 0.53, 0.655, 0.1))
	d.AddConnector(arrow(0.44, 0.54, 0.56, 0.335, 0.15))
	d.AddConnector(arrow(0.44, 0.70, 0.78, 0.69, 0.25))
	d.AddConnector(arrow(0.69, 0.655, 0.78, 0.61, 0.1))
	d.AddConnector(arrow(0.865, 0.58, 0.865, 0.56, 0))
	d.AddConnector(arrow(0.865, 0.50, 0.865, 0.48, 0))
	d.AddConnector(arrow(0.865, 0.42, 0.865, 0.40, 0))

	return d
}

func box(x, y, w, h float64, label string) diagram.Shape {
	return diagram.Shape{Kind: diagram.KindBox, Rect: geom.XYWH(x, y, w, h), Label: label}
}

func arrow(x1, y1, x2, y2, curvature float64) diagram.Connector {
	return diagram.Connector{
		From:      geom.Pt(x1, y1),
		To:        geom.Pt(x2, y2),
		Curvature: curvature,
	}
}

type roleFlow struct {
	name string
	spec template.Spec
}

// roleFlows lists the built-in per-role data-flow templates.
func roleFlows() []roleFlow {
	return []roleFlow{
		{
			name: "flow-administrator",
			spec: template.Spec{
				Role:    "Administrator",
				Process: "Account Governance",
				Actors:  []string{"Administrator", "Security Lead"},
				Actions: []string{
					"Create accounts",
					"Assign roles",
					"Disable accounts",
					"Revoke sessions",
					"Review audit trail",
				},
				Notes: []string{
					"All mutations require an active admin session",
					"Role changes take effect on next request",
					"Disabled accounts keep their history",
				},
				AuditNotes: []string{
					"Every admin action writes an audit event",
					"Events carry actor, target, and timestamp",
					"Audit records are append-only",
				},
				PrimaryStore: template.StoreLabel{Title: "Directory", Detail: "accounts + roles"},
			},
		},
		{
			name: "flow-reviewer",
			spec: template.Spec{
				Role:    "Reviewer",
				Process: "Record Review",
				Actors:  []string{"Reviewer", "Senior Reviewer", "Team Lead"},
				Actions: []string{
					"Open assigned records",
					"Annotate findings",
					"Request changes",
					"Approve or reject",
				},
				Notes: []string{
					"Reviewers only see records assigned to them",
					"Approval requires all findings resolved",
					"Rejections return records to the submitter",
				},
				PrimaryStore: template.StoreLabel{Title: "Record Store", Detail: "records + findings"},
			},
		},
		{
			name: "flow-operator",
			spec: template.Spec{
				Role:    "Operator",
				Process: "Workflow Operations",
				Actors:  []string{"Operator", "On-call Engineer"},
				Actions: []string{
					"Monitor active workflows",
					"Retry failed steps",
					"Escalate incidents",
				},
				Notes: []string{
					"Retries are capped per workflow",
					"Escalation pages the on-call rotation",
				},
				AuditNotes: []string{
					"Manual retries are tagged with the operator",
					"Escalations open a linked incident",
				},
				PrimaryStore: template.StoreLabel{Title: "Workflow Store", Detail: "runs + steps"},
			},
		},
		{
			name: "flow-analyst",
			spec: template.Spec{
				Role:    "Analyst",
				Process: "Data Export",
				Actors:  []string{"Analyst"},
				Actions: []string{
					"Request export",
					"Track export progress",
					"Download results",
				},
				Notes: []string{
					"Exports are scoped to the analyst's teams",
					"Download links expire after 24 hours",
				},
				PrimaryStore: template.StoreLabel{Title: "Export Store", Detail: "jobs + artifacts"},
			},
		},
		{
			name: "flow-member",
			spec: template.Spec{
				Role:    "Member",
				Process: "Self Service",
				Actors:  []string{"Member"},
				Actions: []string{
					"Update profile",
					"Submit records",
					"View own history",
				},
				Notes: []string{
					"Members only read their own data",
					"Submissions enter the review queue",
				},
				PrimaryStore: template.StoreLabel{Title: "Record Store", Detail: "records + profiles"},
			},
		},
	}
}
