package dashboard

// indexPage is the self-contained dashboard page. It renders the report list
// from /api/test-reports and expands a row on click via /api/test-report/:id.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Test Reports</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #222; }
  h1 { font-size: 1.4rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #ddd; }
  tr.report { cursor: pointer; }
  tr.report:hover { background: #f5f5f5; }
  .pass { color: #188038; }
  .fail { color: #d93025; }
  .empty { color: #888; margin-top: 1rem; }
  pre { background: #f8f8f8; padding: 0.8rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>Test Reports</h1>
<div id="content"><p class="empty">Loading...</p></div>
<script>
async function loadReports() {
  const res = await fetch('/api/test-reports');
  const reports = await res.json();
  const content = document.getElementById('content');
  if (!reports.length) {
    content.innerHTML = '<p class="empty">No test reports found.</p>';
    return;
  }
  let html = '<table><tr><th>Project</th><th>Time</th><th>Total</th><th>Passed</th><th>Failed</th><th>Success</th><th>Duration</th></tr>';
  for (const r of reports) {
    html += '<tr class="report" data-id="' + r.id + '">' +
      '<td>' + r.project + '</td>' +
      '<td>' + new Date(r.timestamp).toLocaleString() + '</td>' +
      '<td>' + r.total_tests + '</td>' +
      '<td class="pass">' + r.passed + '</td>' +
      '<td class="fail">' + r.failed + '</td>' +
      '<td>' + r.success_percentage.toFixed(1) + '%</td>' +
      '<td>' + r.duration.toFixed(2) + 's</td></tr>' +
      '<tr class="detail" data-id="' + r.id + '" hidden><td colspan="7"><pre></pre></td></tr>';
  }
  html += '</table>';
  content.innerHTML = html;
  for (const row of content.querySelectorAll('tr.report')) {
    row.addEventListener('click', () => toggleDetail(row.dataset.id));
  }
}
async function toggleDetail(id) {
  const detail = document.querySelector('tr.detail[data-id="' + id + '"]');
  if (!detail.hidden) {
    detail.hidden = true;
    return;
  }
  const res = await fetch('/api/test-report/' + id);
  const full = await res.json();
  detail.querySelector('pre').textContent = JSON.stringify(full.tests || [], null, 2);
  detail.hidden = false;
}
loadReports();
</script>
</body>
</html>
`
