// Package monitoring turns a running wardkeeper session into a small web
// server for read-only inspection of the containers.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Container is the view the monitor needs of a ward container.
type Container interface {
	Size() int
	Capacity() int
}

type registeredContainer struct {
	name      string
	container Container
}

// Monitor serves the state of registered containers over HTTP. It never
// mutates them.
type Monitor struct {
	portNumber  int
	openBrowser bool
	containers  []registeredContainer
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor page in the default browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterContainer registers a container to be monitored under the given
// name.
func (m *Monitor) RegisterContainer(name string, c Container) {
	m.containers = append(m.containers, registeredContainer{
		name:      name,
		container: c,
	})
}

// StartServer starts the monitor as a web server, on the requested port if
// one was set and a random free port otherwise.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/list_containers", m.listContainers)
	r.HandleFunc("/api/container/{name}", m.listContainerDetails)
	r.HandleFunc("/api/occupancy", m.listOccupancy)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/", m.index)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring wardkeeper with %s\n", url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()

	if m.openBrowser {
		err = browser.OpenURL(url)
		dieOnErr(err)
	}
}

func (m *Monitor) index(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, `{"endpoints":["/api/list_containers",`+
		`"/api/container/{name}","/api/occupancy","/api/resource"]}`)
}

func (m *Monitor) listContainers(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.containers {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", c.name)
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listContainerDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	container := m.findContainerOr404(w, name)
	if container == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(container)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) listOccupancy(w http.ResponseWriter, r *http.Request) {
	sortMethod, limit, offset, err := m.occupancyParseParams(r)
	if err != nil {
		w.WriteHeader(400)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	selected := m.sortAndSelectContainers(sortMethod, limit, offset)

	fmt.Fprint(w, "[")
	for i, c := range selected {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "{\"container\":%q,\"level\":%d,\"cap\":%d}",
			c.name, c.container.Size(), c.container.Capacity())
	}
	fmt.Fprint(w, "]")
}

func (*Monitor) occupancyParseParams(
	r *http.Request,
) (sortMethod string, limit, offset int, err error) {
	sortMethod = r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = "percent"
	}
	if sortMethod != "level" && sortMethod != "percent" {
		return "", 0, 0, fmt.Errorf(
			"invalid sort method: %s, allowed values are `level` and `percent`",
			sortMethod)
	}

	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = "0"
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		return sortMethod, 0, 0, err
	}

	offsetStr := r.URL.Query().Get("offset")
	if offsetStr == "" {
		offsetStr = "0"
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return sortMethod, limit, 0, err
	}

	return sortMethod, limit, offset, nil
}

func containerPercent(c Container) float64 {
	return float64(c.Size()) / float64(c.Capacity())
}

func (m *Monitor) sortAndSelectContainers(
	sortMethod string,
	limit, offset int,
) []registeredContainer {
	sorted := make([]registeredContainer, len(m.containers))
	copy(sorted, m.containers)

	if sortMethod == "level" {
		sort.Slice(sorted, func(i, j int) bool {
			sizeI := sorted[i].container.Size()
			sizeJ := sorted[j].container.Size()

			if sizeI != sizeJ {
				return sizeI > sizeJ
			}
			return containerPercent(sorted[i].container) >
				containerPercent(sorted[j].container)
		})
	} else {
		sort.Slice(sorted, func(i, j int) bool {
			percentI := containerPercent(sorted[i].container)
			percentJ := containerPercent(sorted[j].container)

			if percentI != percentJ {
				return percentI > percentJ
			}
			return sorted[i].container.Size() > sorted[j].container.Size()
		})
	}

	if offset > len(sorted) {
		offset = len(sorted)
	}
	sorted = sorted[offset:]

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) findContainerOr404(
	w http.ResponseWriter,
	name string,
) Container {
	var container Container
	for _, c := range m.containers {
		if c.name == name {
			container = c.container
		}
	}

	if container == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Container not found"))
		dieOnErr(err)
	}

	return container
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
