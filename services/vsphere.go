// ABOUTME: vSphere client for source inventory discovery via govmomi
// ABOUTME: Retrieves cluster capacity and VM requirements for migration planning

package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"
	"golang.org/x/sync/errgroup"

	"github.com/openmigrate/capacity-planner/models"
)

// VSphereCredentials holds vCenter connection info
type VSphereCredentials struct {
	Host       string
	Username   string
	Password   string
	Datacenter string
	Insecure   bool
}

// VSphereClient wraps govmomi client for inventory discovery
type VSphereClient struct {
	creds      VSphereCredentials
	client     *govmomi.Client
	finder     *find.Finder
	datacenter *object.Datacenter
}

// InventorySnapshot is one point-in-time view of a datacenter, expressed in
// the engine's input records.
type InventorySnapshot struct {
	ID          string                         `json:"id"`
	Datacenter  string                         `json:"datacenter"`
	Clusters    []models.ClusterCapacity       `json:"clusters"`
	VMs         []models.VMResourceRequirement `json:"vms"`
	CollectedAt time.Time                      `json:"collectedAt"`
}

// NewVSphereClient creates a new vSphere client
func NewVSphereClient(creds VSphereCredentials) *VSphereClient {
	return &VSphereClient{
		creds: creds,
	}
}

// Connect establishes connection to vCenter
func (v *VSphereClient) Connect(ctx context.Context) error {
	host := v.creds.Host
	if !strings.HasPrefix(host, "https://") && !strings.HasPrefix(host, "http://") {
		host = "https://" + host
	}

	u, err := url.Parse(host + "/sdk")
	if err != nil {
		return fmt.Errorf("invalid vCenter URL '%s': %w", v.creds.Host, err)
	}
	u.User = url.UserPassword(v.creds.Username, v.creds.Password)

	client, err := govmomi.NewClient(ctx, u, v.creds.Insecure)
	if err != nil {
		// Provide more specific error messages
		errStr := err.Error()
		if strings.Contains(errStr, "connection refused") {
			return fmt.Errorf("connection refused to vCenter at %s - verify the host is reachable", v.creds.Host)
		}
		if strings.Contains(errStr, "no such host") {
			return fmt.Errorf("cannot resolve vCenter hostname '%s' - verify DNS", v.creds.Host)
		}
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "Cannot complete login") {
			return fmt.Errorf("authentication failed - verify username and password")
		}
		if strings.Contains(errStr, "context deadline exceeded") || strings.Contains(errStr, "timeout") {
			return fmt.Errorf("connection timeout to vCenter at %s - check network connectivity", v.creds.Host)
		}
		if strings.Contains(errStr, "certificate") || strings.Contains(errStr, "x509") {
			return fmt.Errorf("SSL certificate error connecting to %s - try setting VSPHERE_INSECURE=true", v.creds.Host)
		}
		return fmt.Errorf("failed to connect to vCenter at %s: %w", v.creds.Host, err)
	}

	v.client = client
	v.finder = find.NewFinder(client.Client, true)

	dc, err := v.finder.Datacenter(ctx, v.creds.Datacenter)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("datacenter '%s' not found - verify the datacenter name", v.creds.Datacenter)
		}
		return fmt.Errorf("error accessing datacenter '%s': %w", v.creds.Datacenter, err)
	}
	v.datacenter = dc
	v.finder.SetDatacenter(dc)

	slog.Info("vSphere connected successfully")
	slog.Debug("vSphere connection details", "host", v.creds.Host, "datacenter", v.creds.Datacenter)
	return nil
}

// Disconnect closes the vCenter connection
func (v *VSphereClient) Disconnect(ctx context.Context) error {
	if v.client != nil {
		return v.client.Logout(ctx)
	}
	return nil
}

// IsConnected returns true if client has an active connection
func (v *VSphereClient) IsConnected() bool {
	return v.client != nil && v.client.Valid()
}

// CollectInventory gathers destination cluster capacity and source VM
// requirements in one pass. Per-cluster property collection runs
// concurrently; any single failure aborts the snapshot.
func (v *VSphereClient) CollectInventory(ctx context.Context) (InventorySnapshot, error) {
	snapshot := InventorySnapshot{
		ID:          uuid.NewString(),
		Datacenter:  v.creds.Datacenter,
		CollectedAt: time.Now(),
	}

	clusterRefs, err := v.finder.ClusterComputeResourceList(ctx, "*")
	if err != nil {
		return snapshot, fmt.Errorf("listing clusters: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	capacities := make([]models.ClusterCapacity, len(clusterRefs))
	var mu sync.Mutex
	var vms []models.VMResourceRequirement

	for i, cluster := range clusterRefs {
		g.Go(func() error {
			capacity, err := v.collectClusterCapacity(gctx, cluster)
			if err != nil {
				return fmt.Errorf("collecting cluster %s: %w", cluster.Name(), err)
			}
			capacities[i] = capacity
			return nil
		})
	}

	g.Go(func() error {
		requirements, err := v.collectVMRequirements(gctx)
		if err != nil {
			return fmt.Errorf("collecting VM requirements: %w", err)
		}
		mu.Lock()
		vms = requirements
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot, err
	}

	snapshot.Clusters = capacities
	snapshot.VMs = vms
	slog.Info("vSphere inventory collected",
		"datacenter", v.creds.Datacenter,
		"clusters", len(snapshot.Clusters),
		"vms", len(snapshot.VMs))
	return snapshot, nil
}

// collectClusterCapacity reduces a cluster's hosts and datastores into one
// ClusterCapacity record. The per-core clock speed is averaged across
// powered-on hosts; overcommit ratios are left unset for the planner to fill.
func (v *VSphereClient) collectClusterCapacity(ctx context.Context, cluster *object.ClusterComputeResource) (models.ClusterCapacity, error) {
	capacity := models.ClusterCapacity{
		ID:   cluster.Reference().Value,
		Name: cluster.Name(),
	}

	var clusterMo mo.ClusterComputeResource
	if err := cluster.Properties(ctx, cluster.Reference(), []string{"host", "datastore"}, &clusterMo); err != nil {
		return capacity, fmt.Errorf("getting cluster properties: %w", err)
	}

	var totalCores int
	var totalMemoryBytes int64
	var totalMhz int64
	var hostsCounted int

	for _, hostRef := range clusterMo.Host {
		host := object.NewHostSystem(v.client.Client, hostRef)
		var hostMo mo.HostSystem
		if err := host.Properties(ctx, hostRef, []string{"summary", "runtime"}, &hostMo); err != nil {
			return capacity, fmt.Errorf("getting host properties: %w", err)
		}
		if hostMo.Runtime.PowerState != "poweredOn" || hostMo.Runtime.InMaintenanceMode {
			continue
		}
		totalCores += int(hostMo.Summary.Hardware.NumCpuCores)
		totalMemoryBytes += hostMo.Summary.Hardware.MemorySize
		totalMhz += int64(hostMo.Summary.Hardware.CpuMhz)
		hostsCounted++
	}

	capacity.TotalCores = totalCores
	capacity.MemoryGB = float64(totalMemoryBytes) / (1024 * 1024 * 1024)
	if hostsCounted > 0 {
		capacity.CPUGhz = float64(totalMhz) / float64(hostsCounted) / 1000
	}

	var storageBytes int64
	for _, dsRef := range clusterMo.Datastore {
		var dsMo mo.Datastore
		if err := object.NewDatastore(v.client.Client, dsRef).Properties(ctx, dsRef, []string{"summary"}, &dsMo); err != nil {
			return capacity, fmt.Errorf("getting datastore properties: %w", err)
		}
		storageBytes += dsMo.Summary.Capacity
	}
	capacity.StorageTB = float64(storageBytes) / (1024 * 1024 * 1024 * 1024)

	return capacity, nil
}

// collectVMRequirements maps every readable VM in the datacenter to a
// VMResourceRequirement. VMs whose properties cannot be read are skipped,
// matching how partial inventory is handled elsewhere.
func (v *VSphereClient) collectVMRequirements(ctx context.Context) ([]models.VMResourceRequirement, error) {
	vmRefs, err := v.finder.VirtualMachineList(ctx, "*")
	if err != nil {
		if _, ok := err.(*find.NotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("listing VMs: %w", err)
	}

	requirements := make([]models.VMResourceRequirement, 0, len(vmRefs))
	for _, vm := range vmRefs {
		var vmMo mo.VirtualMachine
		if err := vm.Properties(ctx, vm.Reference(), []string{"config", "summary"}, &vmMo); err != nil {
			slog.Debug("Skipping unreadable VM", "vm", vm.Name(), "error", err)
			continue
		}

		req := models.VMResourceRequirement{
			ID:   vm.Reference().Value,
			Name: vm.Name(),
		}
		if vmMo.Config != nil {
			req.CPUs = int(vmMo.Config.Hardware.NumCPU)
			req.MemoryMB = float64(vmMo.Config.Hardware.MemoryMB)
		}
		if vmMo.Summary.Storage != nil {
			provisionedBytes := vmMo.Summary.Storage.Committed + vmMo.Summary.Storage.Uncommitted
			req.ProvisionedMB = float64(provisionedBytes) / (1024 * 1024)
		}
		requirements = append(requirements, req)
	}

	return requirements, nil
}

// VSphereClientFromEnv creates a client from environment-style settings
func VSphereClientFromEnv(host, user, pass, datacenter string, insecure bool) *VSphereClient {
	return NewVSphereClient(VSphereCredentials{
		Host:       host,
		Username:   user,
		Password:   pass,
		Datacenter: datacenter,
		Insecure:   insecure,
	})
}
