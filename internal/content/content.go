// Package content holds the service catalog the map renders: one root,
// a list of categories, and the services under each category. The catalog
// is read-only at runtime; iteration order is the authored order.
package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Root is the central entry of the catalog.
type Root struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Service is one leaf entry under a category.
type Service struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

// Category groups related services.
type Category struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Services    []Service `yaml:"services"`
}

// Catalog is the full hierarchy.
type Catalog struct {
	Root       Root       `yaml:"root"`
	Categories []Category `yaml:"categories"`
}

// Label derives a display label from an id by replacing underscores
// with spaces.
func Label(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (Catalog, error) {
	var cat Catalog
	data, err := os.ReadFile(path)
	if err != nil {
		return cat, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return cat, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return cat, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

// Validate checks the structural invariants: a root id, unique ids across
// the whole catalog, and non-empty category ids.
func (c Catalog) Validate() error {
	if c.Root.ID == "" {
		return fmt.Errorf("root id is required")
	}
	seen := map[string]bool{c.Root.ID: true}
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category id is required")
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate id %q", cat.ID)
		}
		seen[cat.ID] = true
		for _, svc := range cat.Services {
			if svc.ID == "" {
				return fmt.Errorf("service id is required in category %q", cat.ID)
			}
			if seen[svc.ID] {
				return fmt.Errorf("duplicate id %q", svc.ID)
			}
			seen[svc.ID] = true
		}
	}
	return nil
}

// Default returns the built-in Azure service catalog.
func Default() Catalog {
	return Catalog{
		Root: Root{
			ID:          "Azure_Architectures",
			Label:       "Azure Architectures",
			Description: "Central node for Azure Architectures",
		},
		Categories: []Category{
			{
				ID:          "Compute",
				Description: "Compute services in Azure",
				Services: []Service{
					{ID: "Virtual_Machines", Description: "Virtual Machines (VMs) provide scalable computing resources in Azure."},
					{ID: "App_Services", Description: "App Services are used to build, host, and scale web applications."},
					{ID: "Kubernetes", Description: "Azure Kubernetes Service (AKS) provides container orchestration and management."},
					{ID: "Functions", Description: "Azure Functions are serverless compute services that allow you to run event-driven code."},
				},
			},
			{
				ID:          "Networking",
				Description: "Networking services in Azure",
				Services: []Service{
					{ID: "VNets", Description: "Virtual Networks (VNets) allow you to build isolated network environments in Azure."},
					{ID: "Load_Balancers", Description: "Load Balancers distribute network traffic across multiple servers."},
					{ID: "DNS", Description: "Azure DNS allows you to host your DNS domains and manage records."},
					{ID: "NSGs", Description: "Network Security Groups (NSGs) control network traffic in and out of Azure resources."},
				},
			},
			{
				ID:          "Storage",
				Description: "Storage services in Azure",
				Services: []Service{
					{ID: "Blob_Storage", Description: "Blob Storage is used for storing unstructured data like text or binary data."},
					{ID: "File_Storage", Description: "File Storage provides fully managed file shares in the cloud."},
					{ID: "Managed_Disks", Description: "Managed Disks are used to store data for VMs and other Azure resources."},
					{ID: "Data_Lake", Description: "Azure Data Lake is a scalable data storage and analytics service."},
				},
			},
			{
				ID:          "Identity_Security",
				Description: "Identity and Security services in Azure",
				Services: []Service{
					{ID: "Azure_AD", Description: "Azure Active Directory (AD) is a cloud-based identity and access management service."},
					{ID: "RBAC", Description: "Role-Based Access Control (RBAC) allows you to manage who has access to Azure resources."},
					{ID: "Key_Vault", Description: "Azure Key Vault helps safeguard cryptographic keys and secrets."},
					{ID: "Security_Center", Description: "Azure Security Center provides unified security management and threat protection."},
				},
			},
			{
				ID:          "Databases",
				Description: "Database services in Azure",
				Services: []Service{
					{ID: "SQL_Database", Description: "Azure SQL Database is a fully managed relational database service."},
					{ID: "Cosmos_DB", Description: "Cosmos DB is a globally distributed NoSQL database service."},
					{ID: "MySQL_PostgreSQL", Description: "Azure offers fully managed MySQL and PostgreSQL databases."},
					{ID: "SQL_Managed_Instances", Description: "SQL Managed Instances are fully-managed SQL Server instances in Azure."},
				},
			},
			{
				ID:          "Integration",
				Description: "Integration services in Azure",
				Services: []Service{
					{ID: "Logic_Apps", Description: "Azure Logic Apps allow you to automate workflows and integrate applications."},
					{ID: "Service_Bus", Description: "Azure Service Bus is a messaging service for reliable communication between services."},
					{ID: "Event_Grid", Description: "Event Grid enables event-based architectures in Azure."},
					{ID: "API_Management", Description: "API Management allows you to create, manage, and secure APIs."},
				},
			},
			{
				ID:          "Monitoring_Governance",
				Description: "Monitoring and Governance services in Azure",
				Services: []Service{
					{ID: "Azure_Monitor", Description: "Azure Monitor provides full-stack monitoring across your applications and resources."},
					{ID: "Policy", Description: "Azure Policy helps enforce organizational standards and compliance."},
					{ID: "Cost_Management", Description: "Cost Management helps you track and optimize your Azure spending."},
					{ID: "Blueprints", Description: "Azure Blueprints automate governance for resource management and compliance."},
				},
			},
		},
	}
}
