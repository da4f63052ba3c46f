// Package templates holds the dashboard page component. The page
// shell is server-rendered; panel content arrives over datastar SSE
// and the charts are drawn client-side from the JSON API.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Dashboard returns the full dashboard page.
func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardPage)
		return err
	})
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Electronics Sales Data Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.2/bundles/datastar.js"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.3/dist/chart.umd.min.js"></script>
<style>
:root { --accent: #4a90d9; --border: #d9dee3; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: #1d2733; background: #f5f7f9; }
header { padding: 1rem 1.5rem; background: #fff; border-bottom: 1px solid var(--border); }
header h1 { margin: 0; font-size: 1.4rem; }
header p { margin: 0.25rem 0 0; color: #5a6572; }
.layout { display: grid; grid-template-columns: 260px 1fr; gap: 1rem; padding: 1rem 1.5rem; }
aside { background: #fff; border: 1px solid var(--border); border-radius: 8px; padding: 1rem; align-self: start; }
aside h2 { margin-top: 0; font-size: 1rem; }
.report-lines { margin: 0; padding-left: 1.1rem; font-size: 0.85rem; line-height: 1.6; }
main { display: flex; flex-direction: column; gap: 1rem; }
.panel { background: #fff; border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.panel h2 { margin: 0 0 0.75rem; font-size: 1.05rem; }
.chart-row { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
.modern-table { width: 100%; border-collapse: collapse; font-size: 0.8rem; }
.modern-table th, .modern-table td { border: 1px solid var(--border); padding: 0.35rem 0.5rem; text-align: left; }
.modern-table th { background: #eef2f5; }
canvas { max-height: 360px; }
footer { padding: 1rem 1.5rem; color: #5a6572; font-size: 0.85rem; border-top: 1px solid var(--border); }
</style>
</head>
<body>
<header>
<h1>&#128200; Electronics Sales Data Dashboard</h1>
<p>Analyzing customer purchase behavior and sales trends for ABC Manufacturing.</p>
</header>
<div class="layout">
<aside data-on-load="@get('/sse/report')">
<h2>Data Preprocessing Status</h2>
<div id="report-content">Loading&hellip;</div>
</aside>
<main>
<section class="panel" data-on-load="@get('/sse/preview')">
<h2>Raw Data Preview (Completed Orders Only)</h2>
<div id="preview-content">Loading&hellip;</div>
</section>
<section class="panel">
<h2>1. Daily Total Quantity Sold Over Time</h2>
<div id="daily-content" hidden></div>
<canvas id="daily-chart" aria-label="Total Quantity Sold Over Time (Daily)"></canvas>
</section>
<section class="panel">
<h2>2. Total Quantity Sold by Product Type</h2>
<div id="products-content" hidden></div>
<canvas id="product-chart" aria-label="Total Quantity Sold by Product Type"></canvas>
</section>
<section class="panel">
<h2>3. Monthly Sales Seasonality</h2>
<div id="monthly-content" hidden></div>
<canvas id="monthly-chart" aria-label="Total Quantity Sold by Month (Seasonality)"></canvas>
</section>
<section class="panel">
<h2>4. Customer Age Distribution and Sales Relationship</h2>
<div id="age-dist-content" hidden></div>
<div id="scatter-content" hidden></div>
<div class="chart-row">
<canvas id="age-dist-chart" aria-label="Distribution of Customer Age"></canvas>
<canvas id="scatter-chart" aria-label="Quantity Sold vs. Customer Age by Product Type"></canvas>
</div>
</section>
<section class="panel">
<h2>5. Distribution of Product Ratings</h2>
<div id="ratings-content" hidden></div>
<canvas id="ratings-chart" aria-label="Distribution of Product Ratings (1-5 Stars)"></canvas>
</section>
</main>
</div>
<footer>Developed for the sales analysis dashboard. Preprocessing counts are shown in the sidebar.</footer>
<script>
const palette = ['#4a90d9', '#7b5ea7', '#4caf7d', '#e0915a', '#d96b6b', '#5ab8c4', '#a78a5e', '#8a8f98'];

async function getData(path) {
  const res = await fetch(path);
  if (!res.ok) throw new Error(path + ': ' + res.status);
  const body = await res.json();
  return body.data;
}

function barChart(id, labels, values, xLabel, yLabel) {
  new Chart(document.getElementById(id), {
    type: 'bar',
    data: { labels: labels, datasets: [{ data: values, backgroundColor: palette }] },
    options: {
      plugins: { legend: { display: false } },
      scales: {
        x: { title: { display: true, text: xLabel } },
        y: { title: { display: true, text: yLabel }, beginAtZero: true }
      }
    }
  });
}

async function drawCharts() {
  const daily = await getData('/api/daily-sales');
  new Chart(document.getElementById('daily-chart'), {
    type: 'line',
    data: {
      labels: daily.map(d => d.date),
      datasets: [{
        label: 'Daily Total Quantity Sold',
        data: daily.map(d => d.quantity),
        borderColor: '#87ceeb',
        backgroundColor: 'rgba(135, 206, 235, 0.3)',
        pointRadius: 0,
        tension: 0.1
      }]
    },
    options: {
      scales: {
        x: { title: { display: true, text: 'Date' } },
        y: { title: { display: true, text: 'Quantity Sold' }, beginAtZero: true }
      }
    }
  });

  const products = await getData('/api/product-sales');
  barChart('product-chart', products.map(p => p.product_type), products.map(p => p.quantity),
    'Product Type', 'Total Quantity Sold');

  const monthly = await getData('/api/monthly-seasonality');
  barChart('monthly-chart', monthly.map(m => m.month), monthly.map(m => m.quantity),
    'Month', 'Total Quantity Sold');

  const ages = await getData('/api/age-distribution');
  new Chart(document.getElementById('age-dist-chart'), {
    data: {
      datasets: [
        {
          type: 'bar',
          label: 'Count',
          data: ages.bins.map(b => ({ x: (b.start + b.end) / 2, y: b.count })),
          backgroundColor: 'rgba(76, 175, 125, 0.6)',
          barPercentage: 1.0,
          categoryPercentage: 1.0
        },
        {
          type: 'line',
          label: 'Density',
          data: ages.density.map(p => ({ x: p.age, y: p.density })),
          borderColor: '#2e7d32',
          pointRadius: 0,
          tension: 0.3
        }
      ]
    },
    options: {
      scales: {
        x: { type: 'linear', title: { display: true, text: 'Age' } },
        y: { title: { display: true, text: 'Count' }, beginAtZero: true }
      }
    }
  });

  const scatter = await getData('/api/age-quantity');
  new Chart(document.getElementById('scatter-chart'), {
    type: 'scatter',
    data: {
      datasets: scatter.map((s, i) => ({
        label: s.product_type,
        data: s.points,
        backgroundColor: palette[i % palette.length] + '80'
      }))
    },
    options: {
      scales: {
        x: { title: { display: true, text: 'Age' } },
        y: { title: { display: true, text: 'Quantity Sold per Transaction' }, beginAtZero: true }
      }
    }
  });

  const ratings = await getData('/api/ratings');
  barChart('ratings-chart', ratings.map(r => r.rating), ratings.map(r => r.count),
    'Rating', 'Number of Ratings');
}

drawCharts().catch(err => console.error('chart rendering failed', err));
</script>
</body>
</html>
`
