package server

import (
	"log"
	"net/http"
)

// handleIndex serves the single-page form.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexPage)); err != nil {
		log.Printf("Error writing index page: %v", err)
	}
}

// indexPage is the local web form: resume upload, job description, optional
// job URL, and the generated documents with download links.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Resume &amp; Cover Letter Tailor</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
  fieldset { border: 1px solid #ccc; border-radius: 6px; margin-bottom: 1rem; }
  label { display: block; margin-top: .75rem; font-weight: 600; }
  textarea, input[type=url], select { width: 100%; box-sizing: border-box; }
  textarea { min-height: 10rem; }
  button { margin-top: 1rem; padding: .5rem 1.5rem; }
  .output { white-space: pre-wrap; background: #f6f6f6; border-radius: 6px; padding: 1rem; min-height: 8rem; }
  .error { color: #b00020; font-weight: 600; }
  .downloads a { margin-right: 1.5rem; }
</style>
</head>
<body>
<h1>Resume &amp; Cover Letter Tailor</h1>
<p>Upload your resume, paste the job details, and download documents tailored to the position.
The generated PDF is a clean text-only version; paste the text back into your own template to keep your design.</p>

<form id="generate-form">
  <fieldset>
    <legend>Your information</legend>
    <label for="resume">Resume (PDF only)</label>
    <input type="file" id="resume" name="resume" accept=".pdf" required>
    <label for="job_description">Job description</label>
    <textarea id="job_description" name="job_description" placeholder="Include the job title and company name for best results..." required></textarea>
    <label for="job_url">Job post or company URL (optional)</label>
    <input type="url" id="job_url" name="job_url" placeholder="https://careers.example.com/job/123">
    <label for="tier">Model tier</label>
    <select id="tier" name="tier">
      <option value="standard" selected>standard</option>
      <option value="lite">lite (cheaper, lower quota use)</option>
      <option value="advanced">advanced</option>
    </select>
    <button type="submit" id="submit">Generate tailored documents</button>
  </fieldset>
</form>

<p class="error" id="error" hidden></p>

<h2>Generated resume text</h2>
<div class="output" id="resume-output"></div>
<h2>Generated cover letter</h2>
<div class="output" id="letter-output"></div>
<p class="downloads" id="downloads" hidden>
  <a id="resume-link" href="#">Download resume (PDF)</a>
  <a id="letter-link" href="#">Download cover letter (TXT)</a>
</p>

<script>
const form = document.getElementById("generate-form");
form.addEventListener("submit", async (e) => {
  e.preventDefault();
  const button = document.getElementById("submit");
  const errorEl = document.getElementById("error");
  errorEl.hidden = true;
  button.disabled = true;
  button.textContent = "Generating...";
  try {
    const resp = await fetch("/generate", { method: "POST", body: new FormData(form) });
    const data = await resp.json();
    if (!resp.ok) {
      throw new Error(data.error || ("request failed with status " + resp.status));
    }
    document.getElementById("resume-output").textContent = data.resume_text;
    document.getElementById("letter-output").textContent = data.cover_letter_text;
    const resumeLink = document.getElementById("resume-link");
    const letterLink = document.getElementById("letter-link");
    resumeLink.href = data.resume_url;
    resumeLink.download = data.resume_filename;
    letterLink.href = data.cover_letter_url;
    letterLink.download = data.cover_letter_filename;
    document.getElementById("downloads").hidden = false;
  } catch (err) {
    // Previous outputs stay on screen; only the error banner changes.
    errorEl.textContent = err.message;
    errorEl.hidden = false;
  } finally {
    button.disabled = false;
    button.textContent = "Generate tailored documents";
  }
});
</script>
</body>
</html>
`
